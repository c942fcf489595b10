package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"resume-hosting/internal/domain"

	docx "github.com/fumiama/go-docx"
)

// Fixed style sheet for the Word export. Sizes are half-points, the unit the
// wordprocessing format uses.
const (
	docxColorAccent  = "2563EB"
	docxColorHeading = "1F2937"
	docxColorBody    = "4B5563"
	docxColorMuted   = "6B7280"

	docxSizeName    = "48" // 24pt
	docxSizeHeading = "28" // 14pt
	docxSizeTitle   = "24" // 12pt
	docxSizeSub     = "22" // 11pt
	docxSizeSmall   = "20" // 10pt
)

// ResumeDocx builds the Word document directly from the aggregated resume,
// without going through HTML. The section policy mirrors the HTML renderer:
// empty sections emit nothing. Output is byte-identical for byte-identical
// input; no timestamps are embedded.
func ResumeDocx(doc *domain.ResumeDocument) ([]byte, error) {
	w := docx.New().WithDefaultTheme()
	writeDocxBody(w, doc)

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}

	title := "Resume"
	if name := doc.PersonalInfo.FullName(); name != "" {
		title += " - " + name
	}
	return finalizeDocx(buf.Bytes(), title, "Professional Resume", "resume, professional, career")
}

func writeDocxBody(w *docx.Docx, doc *domain.ResumeDocument) {
	info := doc.PersonalInfo

	if info != nil {
		name := w.AddParagraph()
		name.Justification("center")
		name.AddText(info.FullName()).Size(docxSizeName).Color(docxColorAccent).Bold()

		var contact []string
		for _, v := range []string{info.Email, info.Phone, info.Address, info.LinkedIn} {
			if v != "" {
				contact = append(contact, v)
			}
		}
		if len(contact) > 0 {
			p := w.AddParagraph()
			p.Justification("center")
			p.AddText(strings.Join(contact, " | ")).Size(docxSizeSub).Color(docxColorMuted)
		}
		w.AddParagraph()
	}

	if info != nil && info.Summary != "" {
		docxHeading(w, "PROFESSIONAL SUMMARY")
		w.AddParagraph().AddText(info.Summary).Size(docxSizeSub).Color(docxColorBody)
		w.AddParagraph()
	}

	if len(doc.Experience) > 0 {
		docxHeading(w, "PROFESSIONAL EXPERIENCE")
		for _, exp := range doc.Experience {
			w.AddParagraph().AddText(exp.Position).Size(docxSizeTitle).Color(docxColorHeading).Bold()
			w.AddParagraph().AddText(exp.CompanyName).Size(docxSizeSub).Color(docxColorAccent).Bold()
			start := exp.StartDate
			dates := domain.FormatDate(&start) + " - " + domain.FormatDate(exp.EndDate)
			w.AddParagraph().AddText(dates).Size(docxSizeSmall).Color(docxColorMuted).Italic()
			if exp.Location != "" {
				w.AddParagraph().AddText(exp.Location).Size(docxSizeSmall).Color(docxColorMuted)
			}
			for _, duty := range exp.Duties {
				w.AddParagraph().AddText("• " + duty).Size(docxSizeSmall).Color(docxColorBody)
			}
			w.AddParagraph()
		}
	}

	if len(doc.Education) > 0 {
		docxHeading(w, "EDUCATION")
		for _, edu := range doc.Education {
			w.AddParagraph().AddText(edu.Degree + " in " + edu.FieldOfStudy).
				Size(docxSizeTitle).Color(docxColorHeading).Bold()
			w.AddParagraph().AddText(edu.Institution).Size(docxSizeSub).Color(docxColorAccent).Bold()
			w.AddParagraph().AddText(edu.StartYearMonth + " - " + edu.EndYearMonth).
				Size(docxSizeSmall).Color(docxColorMuted).Italic()
			if edu.Location != "" {
				w.AddParagraph().AddText(edu.Location).Size(docxSizeSmall).Color(docxColorMuted)
			}
		}
		w.AddParagraph()
	}

	if len(doc.Skills) > 0 {
		docxHeading(w, "TECHNICAL SKILLS")
		for _, category := range doc.Skills.Categories() {
			w.AddParagraph().AddText(category).Size(docxSizeSub).Color(docxColorHeading).Bold()
			w.AddParagraph().AddText(skillNames(doc.Skills[category])).Size(docxSizeSmall).Color(docxColorBody)
		}
		w.AddParagraph()
	}

	if len(doc.Projects) > 0 {
		docxHeading(w, "KEY PROJECTS")
		for _, project := range doc.Projects {
			w.AddParagraph().AddText(project.Name).Size(docxSizeTitle).Color(docxColorHeading).Bold()
			if project.Description != "" {
				w.AddParagraph().AddText(project.Description).Size(docxSizeSmall).Color(docxColorBody)
			}
			if project.Technologies != "" {
				w.AddParagraph().AddText("Technologies: " + project.Technologies).
					Size(docxSizeSmall).Color(docxColorMuted).Italic()
			}
		}
		w.AddParagraph()
	}

	if len(doc.Certifications) > 0 {
		docxHeading(w, "CERTIFICATIONS")
		for _, cert := range doc.Certifications {
			w.AddParagraph().AddText(cert.Name).Size(docxSizeTitle).Color(docxColorHeading).Bold()
			w.AddParagraph().AddText(cert.IssuingOrganization).Size(docxSizeSub).Color(docxColorAccent).Bold()
			issued := cert.IssueDate
			w.AddParagraph().AddText(domain.FormatDate(&issued)).Size(docxSizeSmall).Color(docxColorMuted).Italic()
			if cert.CredentialID != "" {
				w.AddParagraph().AddText("ID: " + cert.CredentialID).Size(docxSizeSmall).Color(docxColorMuted)
			}
		}
	}
}

func docxHeading(w *docx.Docx, text string) {
	w.AddParagraph().AddText(text).Size(docxSizeHeading).Color(docxColorHeading).Bold()
}

// finalizeDocx rewrites the generated package so the output is deterministic
// and carries document metadata: entries are re-written in sorted order with
// zeroed modification times, and docProps/core.xml is set from the subject's
// name. A docx file is a zip of XML parts, so this is plain archive surgery.
func finalizeDocx(raw []byte, title, subject, keywords string) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("failed to open generated package: %w", err)
	}

	parts := map[string][]byte{}
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open part %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read part %s: %w", f.Name, err)
		}
		parts[f.Name] = content
	}

	parts["docProps/core.xml"] = coreProperties(title, subject, keywords)

	if types, ok := parts["[Content_Types].xml"]; ok && !bytes.Contains(types, []byte("docProps/core.xml")) {
		override := `<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`
		parts["[Content_Types].xml"] = bytes.Replace(types, []byte("</Types>"), []byte(override+"</Types>"), 1)
	}
	if rels, ok := parts["_rels/.rels"]; ok && !bytes.Contains(rels, []byte("docProps/core.xml")) {
		rel := `<Relationship Id="rIdCore" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>`
		parts["_rels/.rels"] = bytes.Replace(rels, []byte("</Relationships>"), []byte(rel+"</Relationships>"), 1)
	}

	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, name := range names {
		// a fresh FileHeader has a zero Modified time, so repeated runs
		// produce identical archives
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("failed to create part %s: %w", name, err)
		}
		if _, err := fw.Write(parts[name]); err != nil {
			return nil, fmt.Errorf("failed to write part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close package: %w", err)
	}
	return out.Bytes(), nil
}

func coreProperties(title, subject, keywords string) []byte {
	esc := func(s string) string {
		var b bytes.Buffer
		_ = xml.EscapeText(&b, []byte(s))
		return b.String()
	}
	return []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<cp:coreProperties` +
		` xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/"` +
		` xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:dcmitype="http://purl.org/dc/dcmitype/"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + esc(title) + `</dc:title>` +
		`<dc:subject>` + esc(subject) + `</dc:subject>` +
		`<cp:keywords>` + esc(keywords) + `</cp:keywords>` +
		`</cp:coreProperties>`)
}
