// Package render turns a serving decision into the HTML fragment of an ad
// slot.
package render

import (
	"fmt"
	"html"
	"html/template"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
)

var (
	insTagRe    = regexp.MustCompile(`(?is)<ins([^>]*)>\s*</ins>`)
	insAttrRe   = regexp.MustCompile(`([A-Za-z_][\w-]*)\s*=\s*"([^"]*)"`)
	adLoaderRe  = regexp.MustCompile(`(?i)src\s*=\s*"(https://pagead2\.googlesyndication\.com/[^"]+)"`)
	adsbyPushJS = template.HTML(`<script>(adsbygoogle = window.adsbygoogle || []).push({});</script>`)
)

// Renderer writes ad slot fragments.
type Renderer struct {
	tmpl   *template.Template
	logger *slog.Logger
}

// New parses the slot templates.
func New(logger *slog.Logger) *Renderer {
	return &Renderer{
		tmpl:   template.Must(template.New("slot").Parse(slotTemplates)),
		logger: logger,
	}
}

type imageView struct {
	Sidebar      bool
	ClickURL     string
	Alt          string
	Desktop      string
	Mobile       string
	DesktopVideo bool
	MobileVideo  bool
}

type scriptView struct {
	Sidebar bool
	Class   string
	AdSense bool
	Markup  template.HTML
	Doc     string
}

// Render writes the fragment for resp. OutcomeNone writes nothing so the
// slot collapses.
func (r *Renderer) Render(w io.Writer, resp *port.AdResponse) error {
	sidebar := resp.Placement.IsSidebar()
	switch resp.Outcome {
	case domain.OutcomeNone:
		return nil
	case domain.OutcomePlaceholder:
		return r.tmpl.ExecuteTemplate(w, "placeholder", struct{ Sidebar bool }{sidebar})
	case domain.OutcomeCreative:
		if resp.Ad == nil {
			return fmt.Errorf("creative outcome without ad for %s", resp.Placement)
		}
	default:
		return fmt.Errorf("unknown outcome %q", resp.Outcome)
	}

	switch cr := resp.Ad.Creative.(type) {
	case domain.ScriptCreative:
		return r.renderScripts(w, resp.Ad.ID, cr, sidebar)
	case domain.ImageCreative:
		mobile := cr.MobileImageURL
		if mobile == "" {
			mobile = cr.ImageURL
		}
		return r.tmpl.ExecuteTemplate(w, "image", imageView{
			Sidebar:      sidebar,
			ClickURL:     resp.ClickURL,
			Alt:          resp.Ad.AltText,
			Desktop:      cr.ImageURL,
			Mobile:       mobile,
			DesktopVideo: domain.IsVideoURL(cr.ImageURL),
			MobileVideo:  cr.MobileImageURL != "" && domain.IsVideoURL(cr.MobileImageURL),
		})
	default:
		return fmt.Errorf("campaign %s has no creative", resp.Ad.ID)
	}
}

func (r *Renderer) renderScripts(w io.Writer, id string, cr domain.ScriptCreative, sidebar bool) error {
	if cr.MobileScript == "" {
		return r.tmpl.ExecuteTemplate(w, "script", r.scriptView(id, cr.Script, "", sidebar))
	}
	if err := r.tmpl.ExecuteTemplate(w, "script", r.scriptView(id, cr.Script, "hidden md:flex", sidebar)); err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "script", r.scriptView(id, cr.MobileScript, "flex md:hidden", sidebar))
}

// scriptView prepares one script container. AdSense tags are injected into
// the page itself because the network expects synchronous execution in the
// host document; everything else runs in a sandboxed iframe.
func (r *Renderer) scriptView(id, script, class string, sidebar bool) scriptView {
	v := scriptView{Sidebar: sidebar, Class: class}
	if !domain.IsAdSenseScript(script) {
		v.Doc = sandboxDocument(script)
		return v
	}
	v.AdSense = true
	markup, err := adSenseMarkup(script)
	if err != nil {
		r.logger.Error("adsense injection", slog.String("campaign_id", id), slog.Any("error", err))
		return v
	}
	v.Markup = markup
	return v
}

// adSenseMarkup rebuilds the <ins> slot from the tag, keeping only
// well-formed attributes, and appends the loader and push bootstrap.
func adSenseMarkup(script string) (template.HTML, error) {
	m := insTagRe.FindStringSubmatch(script)
	if m == nil {
		return "", fmt.Errorf("adsense <ins> tag not found")
	}
	var b strings.Builder
	if loader := adLoaderRe.FindStringSubmatch(script); loader != nil {
		b.WriteString(`<script async src="`)
		b.WriteString(html.EscapeString(loader[1]))
		b.WriteString(`" crossorigin="anonymous"></script>`)
	}
	b.WriteString("<ins")
	for _, attr := range insAttrRe.FindAllStringSubmatch(m[1], -1) {
		if strings.HasPrefix(strings.ToLower(attr[1]), "on") {
			continue
		}
		b.WriteString(" ")
		b.WriteString(attr[1])
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(html.UnescapeString(attr[2])))
		b.WriteString(`"`)
	}
	b.WriteString("></ins>")
	b.WriteString(string(adsbyPushJS))
	return template.HTML(b.String()), nil
}

func sandboxDocument(script string) string {
	return `<!DOCTYPE html><html><head><meta charset="utf-8"><style>` +
		`body{margin:0;padding:0;display:flex;justify-content:center;align-items:center;overflow:hidden;height:100vh;background:transparent}` +
		`img,iframe,video{max-width:100%;height:auto}</style></head>` +
		`<body><div id="ad-container">` + script + `</div></body></html>`
}

const slotTemplates = `
{{define "size"}}{{if .Sidebar}}w-[160px] min-h-[600px]{{else}}w-full min-h-[90px]{{end}}{{end}}

{{define "image"}}<div class="ad-slot relative overflow-hidden group mx-auto {{if .Sidebar}}w-[160px] h-[600px]{{else}}w-full min-h-[90px] h-auto flex justify-center{{end}}">
<a href="{{.ClickURL}}" target="_blank" rel="noopener noreferrer sponsored" class="block {{if .Sidebar}}w-full h-full{{else}}w-full max-w-full md:max-w-[970px]{{end}}">
{{- if or .DesktopVideo .MobileVideo}}
<div class="block md:hidden w-full h-full">{{if .MobileVideo}}<video src="{{.Mobile}}" autoplay loop muted playsinline class="w-full h-auto object-contain"></video>{{else}}<img src="{{.Mobile}}" alt="{{.Alt}}" loading="lazy" class="w-full h-auto object-contain">{{end}}</div>
<div class="hidden md:block w-full h-full">{{if .DesktopVideo}}<video src="{{.Desktop}}" autoplay loop muted playsinline class="w-full h-auto object-contain"></video>{{else}}<img src="{{.Desktop}}" alt="{{.Alt}}" loading="lazy" class="w-full h-auto object-contain">{{end}}</div>
{{- else}}
<picture>{{if ne .Mobile .Desktop}}<source media="(max-width: 767px)" srcset="{{.Mobile}}">{{end}}<img src="{{.Desktop}}" alt="{{.Alt}}" referrerpolicy="no-referrer" loading="lazy" class="w-full h-auto object-contain"></picture>
{{- end}}
<div class="absolute top-1 right-1 bg-black/50 text-[8px] text-white px-1 rounded z-10">Ad</div>
</a>
</div>{{end}}

{{define "script"}}<div class="ad-slot relative overflow-hidden group mx-auto flex items-center justify-center {{template "size" .}}{{with .Class}} {{.}}{{end}}">
{{- if .AdSense}}{{.Markup}}{{else}}<iframe title="Ad Content" sandbox="allow-scripts allow-popups allow-popups-to-escape-sandbox" loading="lazy" scrolling="no" class="w-full h-full border-0 overflow-hidden" srcdoc="{{.Doc}}"></iframe>{{end -}}
</div>{{end}}

{{define "placeholder"}}{{if .Sidebar}}<div class="ad-placeholder w-[160px] h-[600px] flex-shrink-0 flex flex-col items-center justify-center p-4 text-center">
<p class="text-[10px] uppercase tracking-[0.2em] mb-4">Advertisement</p>
<a href="/advertise.html" class="group block w-full flex-grow"><p class="font-bold text-lg mb-2">Your brand here</p><p class="text-xs">Reach people working with PDFs every day.</p><span class="text-[10px] font-semibold uppercase">Advertise</span></a>
</div>{{else}}<div class="ad-placeholder w-full min-h-[140px] flex items-center justify-center p-6 text-center">
<div class="w-full max-w-2xl"><p class="text-[10px] uppercase tracking-[0.2em] mb-3">Advertisement</p>
<a href="/advertise.html" class="group block"><p class="font-bold text-lg">Your brand here</p><p class="text-sm">Put your product in front of people converting, merging and signing documents.</p><span class="text-xs font-semibold uppercase">Advertise with us &rarr;</span></a></div>
</div>{{end}}{{end}}
`
