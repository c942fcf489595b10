// Package render holds the two presentation backends for an aggregated
// resume: a self-contained HTML page (the PDF source) and a Word document.
package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/url"
	"strings"
	"time"

	"resume-hosting/internal/domain"

	"golang.org/x/net/publicsuffix"
)

//go:embed resume.html
var resumeTemplateSrc string

var resumeTemplate = template.Must(template.New("resume").Funcs(template.FuncMap{
	"fmtDate":     fmtDate,
	"dateRange":   dateRange,
	"contactLine": contactLine,
	"skillNames":  skillNames,
	"urlLabel":    urlLabel,
}).Parse(resumeTemplateSrc))

// ResumeHTML renders the document as one self-contained HTML string: inline
// styles, no external resource loads, so rasterization is deterministic and
// offline-safe. It performs no data access.
func ResumeHTML(doc *domain.ResumeDocument) string {
	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, doc); err != nil {
		// the template and data shapes are fixed at compile time
		panic(err)
	}
	return buf.String()
}

func dateRange(start time.Time, end *time.Time) string {
	return domain.FormatDate(&start) + " – " + domain.FormatDate(end)
}

// fmtDate accepts both date columns (time.Time) and nullable ones
// (*time.Time) from the template.
func fmtDate(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return domain.FormatDate(&t)
	case *time.Time:
		return domain.FormatDate(t)
	}
	return ""
}

// contactLine joins the present-only contact fields with a visible separator.
func contactLine(p *domain.PersonalInfo) string {
	if p == nil {
		return ""
	}
	var parts []string
	for _, v := range []string{p.Email, p.Phone, p.Address, urlLabel(p.LinkedIn), urlLabel(p.GitHub), urlLabel(p.Website)} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

func skillNames(skills []domain.Skill) string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

// urlLabel collapses a link to its eTLD+1 for tidy display, falling back to
// the hostname or the raw value when parsing fails.
func urlLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return raw
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
