package main

// page is the single-screen review viewer: one emoji, one review, one
// button.
const page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Sentiment Analysis</title>
<style>
  body { background: white; font-family: Arial, sans-serif; margin: 0; }
  main { max-width: 400px; margin: 40px auto; text-align: center; }
  #emoji { font-size: 120px; line-height: 150px; margin: 20px 0; }
  #review { font-size: 12pt; margin: 10px 0; }
  #review p { margin: 4px 0; }
  button { margin: 20px 0; padding: 6px 16px; }
</style>
</head>
<body>
<main>
  <div id="emoji" aria-live="polite"></div>
  <div id="review"></div>
  <button id="next" type="button">Next Review</button>
</main>
<script>
function show(fb) {
  document.getElementById("emoji").textContent = fb.emoji.glyph;
  document.getElementById("emoji").title = fb.label;
  const review = document.getElementById("review");
  review.replaceChildren();
  for (const s of fb.sentences) {
    const p = document.createElement("p");
    p.textContent = s;
    review.appendChild(p);
  }
}
async function load(method, path) {
  const resp = await fetch(path, { method: method });
  const body = await resp.json();
  if (!resp.ok) { throw new Error(body.error); }
  show(body);
}
document.getElementById("next").addEventListener("click", () => load("POST", "/api/review/next").catch(console.error));
load("GET", "/api/review").catch(console.error);
</script>
</body>
</html>
`
