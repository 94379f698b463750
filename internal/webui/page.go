package webui

// pageHTML is the upload page template. Element ids match the upload
// controller bindings.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Medical Report Summarizer</title>
<style>
  *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
  :root {
    --bg: #f7f9fb;
    --surface: #ffffff;
    --border: #e3e8ee;
    --text: #1a2332;
    --muted: #6b7a8d;
    --accent: #0f766e;
    --error: #b91c1c;
    --radius: 14px;
  }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Inter, Roboto, Helvetica, Arial, sans-serif;
    background: var(--bg);
    color: var(--text);
    display: flex;
    flex-direction: column;
    align-items: center;
    padding: 3rem 1.25rem 2rem;
  }
  main { width: 100%; max-width: 760px; }
  .hidden { display: none !important; }
  .hero h1 { font-size: 1.75rem; margin-bottom: 0.5rem; }
  .hero p { color: var(--muted); margin-bottom: 2rem; }
  .drop {
    border: 2px dashed var(--border);
    border-radius: var(--radius);
    background: var(--surface);
    padding: 3rem 1rem;
    text-align: center;
    cursor: pointer;
  }
  .drop.drag-active { border-color: var(--accent); background: #f0fdfa; }
  .drop[aria-disabled="true"] { opacity: 0.5; cursor: not-allowed; }
  .error {
    margin-top: 1rem;
    padding: 0.75rem 1rem;
    border-radius: 8px;
    background: #fef2f2;
    color: var(--error);
  }
  .loading { text-align: center; padding: 3rem 0; color: var(--muted); }
  .card {
    background: var(--surface);
    border: 1px solid var(--border);
    border-radius: var(--radius);
    padding: 1.25rem;
    margin-bottom: 1rem;
  }
  .card h2 { font-size: 1rem; margin-bottom: 0.5rem; display: flex; gap: 0.5rem; align-items: center; }
  .card ul { padding-left: 1.25rem; }
  .placeholder { color: var(--muted); font-style: italic; list-style: none; margin-left: -1.25rem; }
  button { padding: 0.6rem 1.2rem; border-radius: 8px; border: none; background: var(--accent); color: #fff; cursor: pointer; }
</style>
</head>
<body>
<main>
  <section id="{{.Hero.ID}}" class="hero{{if .Hero.Hidden}} hidden{{end}}">
    <h1>Understand your medical report</h1>
    <p>Upload a PDF and get a plain summary of diagnoses, test results and medications.</p>
  </section>

  <section id="{{.Upload.ID}}"{{if .Upload.Hidden}} class="hidden"{{end}}>
    <form id="uploadForm" action="/upload" method="post" enctype="multipart/form-data">
      <div id="{{.DropZoneID}}" class="drop" aria-disabled="{{.Disabled}}">
        <i data-lucide="file-up"></i>
        <p>Drop a PDF here or click to choose one</p>
        <input id="{{.FileInputID}}" type="file" name="file" accept="application/pdf" hidden{{if .Disabled}} disabled{{end}}>
      </div>
    </form>
    <div id="{{.Banner.ID}}" class="error{{if .Banner.Hidden}} hidden{{end}}" role="alert">
      <span id="{{.ErrorTextID}}">{{plain .ErrorText}}</span>
    </div>
  </section>

  <section id="{{.Loading.ID}}" class="loading{{if .Loading.Hidden}} hidden{{end}}">
    <p>Analyzing report&hellip;</p>
  </section>

  <section id="{{.Result.ID}}"{{if .Result.Hidden}} class="hidden"{{end}}>
    {{range .Sections}}
    <div class="card">
      <h2>{{.Label}}</h2>
      {{if .List}}
      <ul id="{{.ID}}">
        {{range .Items}}<li{{if .Placeholder}} class="placeholder"{{end}}>{{plain .Text}}</li>{{end}}
      </ul>
      {{else}}
      <p id="{{.ID}}">{{plain .Text}}</p>
      {{end}}
    </div>
    {{end}}
    <form action="/reset" method="post">
      <button id="{{.ResetID}}" type="submit">Analyze another report</button>
    </form>
  </section>
</main>
<script>
(function () {
  var input = document.getElementById({{.FileInputID}});
  var zone = document.getElementById({{.DropZoneID}});
  var form = document.getElementById("uploadForm");
  if (!input || !zone || input.disabled) { return; }

  function submit(files) {
    if (!files || files.length === 0) { return; }
    if (files !== input.files) {
      var dt = new DataTransfer();
      dt.items.add(files[0]);
      input.files = dt.files;
    }
    document.getElementById({{.Hero.ID}}).classList.add("hidden");
    document.getElementById({{.Upload.ID}}).classList.add("hidden");
    document.getElementById({{.Loading.ID}}).classList.remove("hidden");
    form.submit();
  }

  zone.addEventListener("click", function () { input.click(); });
  ["dragenter", "dragover"].forEach(function (name) {
    zone.addEventListener(name, function (e) { e.preventDefault(); zone.classList.add("drag-active"); });
  });
  ["dragleave", "drop"].forEach(function (name) {
    zone.addEventListener(name, function (e) { e.preventDefault(); zone.classList.remove("drag-active"); });
  });
  zone.addEventListener("drop", function (e) { submit(e.dataTransfer.files); });
  input.addEventListener("change", function () { submit(input.files); });
})();
</script>
<script src="https://unpkg.com/lucide@latest"></script>
<script>lucide.createIcons();</script>
</body>
</html>
`
