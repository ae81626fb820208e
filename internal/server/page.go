package server

const uploadPage = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Sales Order Converter</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 40px; }
      .card { max-width: 520px; padding: 24px; border: 1px solid #ddd; border-radius: 8px; }
      h1 { margin-top: 0; font-size: 20px; }
      input[type=file] { margin: 12px 0; }
      button { padding: 8px 14px; cursor: pointer; }
      .hint { color: #666; font-size: 12px; }
    </style>
  </head>
  <body>
    <div class="card">
      <h1>Upload CSV to Convert</h1>
      <form action="/convert" method="post" enctype="multipart/form-data">
        <input type="file" name="file" accept=".csv" required />
        <div class="hint">Any .csv filename is supported. Comma or semicolon delimiters are detected automatically.</div>
        <br/>
        <button type="submit">Convert and Download</button>
      </form>
    </div>
  </body>
</html>
`
