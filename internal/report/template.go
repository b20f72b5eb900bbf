package report

import "html/template"

var pageTemplate = template.Must(template.New("dashboard").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Math Academy Dashboard</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f4f5f7; color: #222; }
header { background: #1d2733; color: #fff; padding: 16px 32px; }
header h1 { margin: 0; font-size: 20px; }
header .date { color: #9fb0c3; font-size: 13px; }
main { max-width: 1080px; margin: 24px auto; padding: 0 16px; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(150px, 1fr)); gap: 12px; }
.card { background: #fff; border-radius: 8px; padding: 14px 16px; box-shadow: 0 1px 2px rgba(0,0,0,.08); }
.card .label { font-size: 12px; color: #6b7684; text-transform: uppercase; letter-spacing: .04em; }
.card .value { font-size: 26px; font-weight: 600; margin-top: 4px; }
section { background: #fff; border-radius: 8px; padding: 16px; margin-top: 20px; box-shadow: 0 1px 2px rgba(0,0,0,.08); }
section h2 { margin: 0 0 10px; font-size: 15px; color: #39434f; }
canvas { width: 100%; height: 220px; }
table { border-collapse: collapse; width: 100%; font-size: 13px; }
th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #e7eaee; }
th { color: #6b7684; font-weight: 600; }
tr.transition td { background: #fff7e0; }
</style>
</head>
<body>
<header>
<h1>Math Academy Dashboard</h1>
<div class="date">Generated {{.Date}}</div>
</header>
<main>
<div class="cards">
<div class="card"><div class="label">Total XP</div><div class="value">{{.Snapshot.TotalXP}}</div></div>
<div class="card"><div class="label">Activities</div><div class="value">{{.Snapshot.TotalActivities}}</div></div>
<div class="card"><div class="label">Success Rate</div><div class="value">{{.Snapshot.SuccessRate}}%</div></div>
<div class="card"><div class="label">Avg XP / Day</div><div class="value">{{.Snapshot.AvgXPPerDay}}</div></div>
{{with .Snapshot.BestDay}}<div class="card"><div class="label">Best Day</div><div class="value">{{.Value}}</div><div class="label">{{.Date}}</div></div>{{end}}
{{with .Snapshot.PeakHour}}<div class="card"><div class="label">Peak Hour</div><div class="value">{{.Hour}}:00</div></div>{{end}}
</div>
<section><h2>Cumulative XP</h2><canvas id="cumulative" width="1040" height="220"></canvas></section>
<section><h2>Rolling 7-Day XP</h2><canvas id="rolling" width="1040" height="220"></canvas></section>
<section><h2>This Week</h2><canvas id="week" width="1040" height="220"></canvas></section>
<section>
<h2>Daily Detail</h2>
<table>
<tr><th>Date</th><th>XP</th><th>Activities</th><th>Attainment</th><th>Courses</th></tr>
{{range .Snapshot.Daily}}<tr{{if .CourseTransition}} class="transition"{{end}}><td>{{.Date}}</td><td>{{.XP}}</td><td>{{.Count}}</td><td>{{.TotalEarned}}/{{.TotalPossible}}</td><td>{{range $i, $c := .Courses}}{{if $i}}, {{end}}{{$c}}{{end}}{{if .CourseTransition}} &rarr; {{.ToCourse}}{{end}}</td></tr>{{end}}
</table>
</section>
</main>
<script>window.DASHBOARD = {{.Payload}};</script>
<script>{{.Script}}</script>
</body>
</html>
`

// chartJS is the unminified dashboard script. It draws each series on its
// canvas without any external charting dependency so the report works offline.
const chartJS = `
(function () {
  var data = window.DASHBOARD;
  if (!data) return;

  function drawSeries(canvasId, series, style) {
    var canvas = document.getElementById(canvasId);
    if (!canvas || !series || !series.labels || series.labels.length === 0) return;
    var ctx = canvas.getContext("2d");
    var w = canvas.width, h = canvas.height;
    var pad = { left: 44, right: 12, top: 12, bottom: 26 };
    var values = series.values || [];
    var max = Math.max.apply(null, values.concat([1]));
    var n = values.length;

    var xAt = function (i) {
      if (n === 1) return pad.left + (w - pad.left - pad.right) / 2;
      return pad.left + (i / (n - 1)) * (w - pad.left - pad.right);
    };
    var yAt = function (v) {
      return h - pad.bottom - (v / max) * (h - pad.top - pad.bottom);
    };

    ctx.clearRect(0, 0, w, h);
    ctx.strokeStyle = "#e7eaee";
    ctx.beginPath();
    ctx.moveTo(pad.left, pad.top);
    ctx.lineTo(pad.left, h - pad.bottom);
    ctx.lineTo(w - pad.right, h - pad.bottom);
    ctx.stroke();

    ctx.fillStyle = "#6b7684";
    ctx.font = "11px sans-serif";
    ctx.fillText(String(max), 4, yAt(max) + 4);
    ctx.fillText("0", 4, yAt(0) + 4);
    ctx.fillText(series.labels[0], pad.left, h - 8);
    var last = series.labels[n - 1];
    ctx.fillText(last, w - pad.right - ctx.measureText(last).width, h - 8);

    if (style === "bar") {
      var bw = Math.max(4, (w - pad.left - pad.right) / n - 6);
      ctx.fillStyle = "#4c7fd0";
      for (var i = 0; i < n; i++) {
        var x = xAt(i) - bw / 2;
        ctx.fillRect(x, yAt(values[i]), bw, yAt(0) - yAt(values[i]));
      }
    } else {
      ctx.strokeStyle = "#4c7fd0";
      ctx.lineWidth = 2;
      ctx.beginPath();
      for (var j = 0; j < n; j++) {
        if (j === 0) ctx.moveTo(xAt(j), yAt(values[j]));
        else ctx.lineTo(xAt(j), yAt(values[j]));
      }
      ctx.stroke();
    }

    var transitions = series.transitions || {};
    ctx.strokeStyle = "#d09a2f";
    ctx.fillStyle = "#d09a2f";
    for (var k = 0; k < n; k++) {
      var t = transitions[series.labels[k]];
      if (!t) continue;
      ctx.beginPath();
      ctx.moveTo(xAt(k), pad.top);
      ctx.lineTo(xAt(k), h - pad.bottom);
      ctx.stroke();
      ctx.fillText(t.to, Math.min(xAt(k) + 4, w - 80), pad.top + 12);
    }
  }

  drawSeries("cumulative", data.cumulativeXP, "line");
  drawSeries("rolling", data.rollingXP, "line");
  drawSeries("week", data.weekXP, "bar");
})();
`
