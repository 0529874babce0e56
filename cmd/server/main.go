package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/longxia/globalbrief/internal/config"
	"github.com/longxia/globalbrief/internal/digest"
	"github.com/longxia/globalbrief/internal/report"
)

// 常驻服务：按 CRON_SPEC 定时发送简报，同时提供预览与手动触发接口
func main() {
	cfg := config.Load()

	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSpec, func() { sendBriefing(cfg) }); err != nil {
		log.Fatalf("init cron: %v", err)
	}
	c.Start()

	r := gin.Default()
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/digest", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"code": "ok", "data": digest.Build(cfg)})
		})
		v1.GET("/preview", func(ctx *gin.Context) {
			d := digest.Build(cfg)
			html, err := report.Render(d)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "message": "render failed"})
				return
			}
			ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		})
		v1.POST("/send", func(ctx *gin.Context) {
			recipient := ctx.DefaultQuery("to", cfg.Recipient)
			if recipient == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"code": "bad_request", "message": "missing recipient"})
				return
			}
			if err := sendTo(cfg, recipient); err != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"code": "send_failed", "message": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"code": "ok", "message": "briefing sent"})
		})
	}

	addr := ":" + cfg.AppPort
	log.Printf("starting briefing server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}

// sendBriefing 定时任务入口：发送失败只记日志，等下一个时段
func sendBriefing(cfg *config.Config) {
	if cfg.Recipient == "" {
		log.Println("scheduled send skipped: BRIEF_RECIPIENT not set")
		return
	}
	if err := sendTo(cfg, cfg.Recipient); err != nil {
		log.Printf("scheduled send: %v", err)
	}
}

func sendTo(cfg *config.Config, recipient string) error {
	d := digest.Build(cfg)
	if d.TotalArticles == 0 {
		return fmt.Errorf("all sources returned 0 articles, not sending")
	}

	html, err := report.Render(d)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	m := &report.Mailer{Host: cfg.SMTPHost, Port: cfg.SMTPPort, User: cfg.SMTPUser, Pass: cfg.SMTPPass}
	subject := fmt.Sprintf("🌍 全球要闻简报 - %s - %s", d.Period, d.BeijingTime)
	if err := m.Send(recipient, subject, html); err != nil {
		return err
	}
	log.Printf("briefing sent to %s", recipient)
	return nil
}
