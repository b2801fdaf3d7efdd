package notifier

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// HTMLWriter renders the latest broadcast as a static page so the bot
// can be served behind any file server. Each cycle overwrites the file.
type HTMLWriter struct {
	Path string
}

func NewHTMLWriter(path string) *HTMLWriter {
	return &HTMLWriter{Path: path}
}

func (h *HTMLWriter) Name() string { return "html" }

// Send renders the broadcast blocks as escaped cards and atomically
// replaces the output file.
func (h *HTMLWriter) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>市场播报</title>
<style>
body { background: #0e1117; color: #e6edf3; font-family: sans-serif; max-width: 720px; margin: 0 auto; padding: 16px; }
.card { background: #161b22; border: 1px solid #30363d; border-radius: 8px; padding: 12px 16px; margin: 12px 0; }
pre { margin: 0; white-space: pre-wrap; word-break: break-word; font-size: 14px; line-height: 1.6; }
.updated { color: #8b949e; font-size: 12px; }
</style>
</head>
<body>
`)
	b.WriteString(fmt.Sprintf(`<p class="updated">更新于 %s</p>`+"\n",
		time.Now().Format("2006-01-02 15:04:05 MST")))
	for _, block := range strings.Split(text, "\n\n") {
		b.WriteString(`<div class="card"><pre>`)
		b.WriteString(html.EscapeString(block))
		b.WriteString("</pre></div>\n")
	}
	b.WriteString("</body>\n</html>\n")

	tmp := h.Path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(h.Path), 0o755); err != nil {
		return fmt.Errorf("create html output dir: %w", err)
	}
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write html page: %w", err)
	}
	if err := os.Rename(tmp, h.Path); err != nil {
		return fmt.Errorf("replace html page: %w", err)
	}
	return nil
}
