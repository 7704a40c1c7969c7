package post

const postHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Big Movers</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 640px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .block {
      padding: 16px 24px;
      border-top: 1px solid #f3f4f6;
    }

    .block-title {
      font-size: 11px;
      font-weight: 700;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      margin-bottom: 12px;
    }

    .tickers {
      font-family: ui-monospace, SFMono-Regular, Menlo, monospace;
      font-size: 14px;
      background: #f9fafb;
      border-left: 3px solid #463737;
      padding: 12px 16px;
      border-radius: 0 4px 4px 0;
    }
  </style>
</head>
<body>
  <div class="container">
{{- range .Blocks}}
    <section class="block">
      <div class="block-title">Top {{.Count}} ({{.Prefix}})</div>
{{- range .HeaderLines}}
      <p>{{.}}</p>
{{- end}}
      <p class="tickers">{{.Line}}</p>
    </section>
{{- end}}
  </div>
</body>
</html>
`
