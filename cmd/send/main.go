package main

import (
	"fmt"
	"log"
	"os"

	"github.com/longxia/globalbrief/internal/config"
	"github.com/longxia/globalbrief/internal/digest"
	"github.com/longxia/globalbrief/internal/report"
)

// 单次执行完整流水线的命令行入口。
// 用法: send [console|html|email] [recipient]
func main() {
	mode := "console"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}
	recipient := ""
	if len(os.Args) > 2 {
		recipient = os.Args[2]
	}

	cfg := config.Load()
	d := digest.Build(cfg)

	// 零文章保护：全部源失败时不发送空简报
	if d.TotalArticles == 0 {
		log.Fatalf("all sources returned 0 articles, refusing to send (network failure?)")
	}

	switch mode {
	case "console":
		report.WriteConsole(os.Stdout, d)

	case "html":
		html, err := report.Render(d)
		if err != nil {
			log.Fatalf("render: %v", err)
		}
		fmt.Println(html)

	case "email":
		if recipient == "" {
			recipient = cfg.Recipient
		}
		if recipient == "" {
			log.Fatalf("email mode needs a recipient (arg or BRIEF_RECIPIENT)")
		}

		report.WriteConsole(os.Stdout, d)

		html, err := report.Render(d)
		if err != nil {
			log.Fatalf("render: %v", err)
		}
		m := &report.Mailer{Host: cfg.SMTPHost, Port: cfg.SMTPPort, User: cfg.SMTPUser, Pass: cfg.SMTPPass}
		subject := fmt.Sprintf("🌍 全球要闻简报 - %s - %s", d.Period, d.BeijingTime)
		if err := m.Send(recipient, subject, html); err != nil {
			log.Fatalf("send email: %v", err)
		}
		log.Printf("briefing sent to %s", recipient)

	default:
		log.Fatalf("unknown mode %q, want console|html|email", mode)
	}
}
