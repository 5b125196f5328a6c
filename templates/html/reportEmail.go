package templates

import (
	"fmt"
	"html"
	"strings"
)

// RenderReportEmail generates the HTML body for an emailed accident
// report. The subject is displayed in the header banner, and bodyContent
// is the plain report text that gets HTML-escaped and has newlines
// converted to <br> tags.
func RenderReportEmail(subject, bodyContent string) string {
	escaped := html.EscapeString(bodyContent)
	htmlBody := strings.ReplaceAll(escaped, "\n", "<br>")

	safeSubject := html.EscapeString(subject)

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>%s</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f4f4; }
    .container { max-width: 640px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #1e3a8a 0%%, #b45309 100%%); padding: 32px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 20px; font-weight: 700; }
    .content { padding: 32px 30px; color: #1f2937; line-height: 1.6; font-size: 14px; font-family: 'Courier New', monospace; }
    .footer { padding: 24px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>%s</h1>
    </div>
    <div class="content">
      %s
    </div>
    <div class="footer">
      <p>Satlantas Polres Tasikmalaya</p>
      <p>Dokumen ini dibuat secara otomatis. Mohon tidak membalas email ini.</p>
    </div>
  </div>
</body>
</html>`, safeSubject, safeSubject, htmlBody)
}

// RenderPrintableReport wraps the plain report text in a minimal page
// styled for printing.
func RenderPrintableReport(title, bodyContent string) string {
	escaped := html.EscapeString(bodyContent)
	htmlBody := strings.ReplaceAll(escaped, "\n", "<br>")

	safeTitle := html.EscapeString(title)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="id">
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <style type="text/css">
    body { font-family: 'Courier New', monospace; font-size: 12pt; color: #000; margin: 2cm; }
    .letterhead { text-align: center; border-bottom: 3px double #000; padding-bottom: 8px; margin-bottom: 24px; }
    .letterhead h1 { font-size: 13pt; margin: 0; }
    .letterhead h2 { font-size: 12pt; margin: 0; font-weight: normal; }
    @media print { .no-print { display: none; } }
  </style>
</head>
<body>
  <div class="letterhead">
    <h1>KEPOLISIAN NEGARA REPUBLIK INDONESIA</h1>
    <h2>DAERAH JAWA BARAT</h2>
    <h2>RESOR TASIKMALAYA</h2>
  </div>
  <div class="report-body">
    %s
  </div>
  <div class="no-print">
    <button onclick="window.print()">Cetak</button>
  </div>
</body>
</html>`, safeTitle, htmlBody)
}
