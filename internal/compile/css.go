package compile

// baseCSS is the fixed, block-agnostic stylesheet: reset, base typography,
// layout primitives, and a single mobile breakpoint. Per-block visual
// variation lives in inline styles, never here.
const baseCSS = `*,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
html{-webkit-text-size-adjust:100%}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;line-height:1.6}
img{max-width:100%;display:block}
a{color:inherit}
h1{font-size:3rem;line-height:1.15;margin-bottom:.5em}
h2{font-size:2rem;margin-bottom:1em}
h3{font-size:1.25rem;margin-bottom:.25em}
.hp-page section{max-width:960px;margin:0 auto}
.hp-hero{position:relative}
.hp-hero-overlay{position:absolute;inset:0;background:rgba(0,0,0,.55)}
.hp-hero-inner{position:relative}
.hp-hero-subtitle{font-size:1.25rem;opacity:.85;margin-bottom:.75em}
.hp-hero-meta{font-weight:600;margin-bottom:1.5em}
.hp-cta{display:inline-block;padding:.75em 2em;border-radius:999px;font-weight:700;text-decoration:none}
.hp-prose p{margin-bottom:1em}
.hp-prose ul,.hp-prose ol{margin:0 0 1em 1.5em}
.hp-schedule{list-style:none}
.hp-event{padding:1em 0;border-bottom:1px solid rgba(128,128,128,.25)}
.hp-event-when{display:block;font-size:.9rem;font-weight:600}
.hp-cards,.hp-people,.hp-stats{display:flex;flex-wrap:wrap;gap:1.5rem;justify-content:center}
.hp-card{flex:1 1 220px;max-width:300px;padding:1.5rem;border:1px solid rgba(128,128,128,.25);border-radius:12px}
.hp-reward{font-size:1.5rem;font-weight:700}
.hp-person{width:160px}
.hp-person img{width:96px;height:96px;border-radius:50%;object-fit:cover;margin:0 auto .5em}
.hp-person strong{display:block}
.hp-sponsors{display:flex;flex-wrap:wrap;gap:2rem;align-items:center;justify-content:center}
.hp-sponsor img{max-height:48px}
.hp-stat-value{display:block;font-size:2.5rem;font-weight:800}
.hp-stat-label{font-size:.9rem;letter-spacing:.05em;text-transform:uppercase;opacity:.7}
.hp-faq-item{padding:.75em 0;border-bottom:1px solid rgba(128,128,128,.25)}
.hp-faq-item summary{cursor:pointer;font-weight:600}
.hp-faq-item .hp-prose{padding-top:.5em}
.hp-contact-links a{text-decoration:underline}
@media (max-width:768px){
h1{font-size:2rem}
h2{font-size:1.5rem}
.hp-cards,.hp-people,.hp-stats{flex-direction:column;align-items:center}
.hp-card{max-width:none;width:100%}
}
`
