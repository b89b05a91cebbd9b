package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/notavel/gofiber-notes-api/pkg/app"
	"github.com/notavel/gofiber-notes-api/pkg/configs"
	"github.com/notavel/gofiber-notes-api/pkg/di"
)

func main() {
	// โหลดไฟล์ .env
	if err := godotenv.Load(); err != nil {
		log.Println("ไม่พบไฟล์ .env, ใช้ค่า environment ที่มีอยู่")
	}

	// สร้าง storage backend ตาม STORAGE_TYPE (memory, postgres, remote)
	repos, err := configs.SetupRepositories()
	if err != nil {
		log.Fatalf("ไม่สามารถตั้งค่า storage backend ได้: %v", err)
	}

	// สร้าง container
	container, err := di.NewContainer(repos)
	if err != nil {
		log.Fatalf("ไม่สามารถสร้าง DI container ได้: %v", err)
	}

	// สร้างและใช้ context สำหรับการจัดการ shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// เริ่ม WebSocket Hub
	go container.WebSocketHub.Run(ctx)
	log.Println("WebSocket Hub started successfully")

	// เริ่ม Reminder Processor
	go container.ReminderProcessor.Start(ctx)
	log.Println("Reminder processor started successfully")

	// ตั้งค่าและสร้าง Fiber App
	app := app.SetupApp(container)

	// จัดการการปิดเซิร์ฟเวอร์อย่างสง่างาม
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}

		log.Printf("เซิร์ฟเวอร์กำลังทำงานที่พอร์ต %s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("ไม่สามารถเริ่มเซิร์ฟเวอร์ได้: %v", err)
		}
	}()

	<-c
	log.Println("กำลังปิดเซิร์ฟเวอร์...")

	// แจ้ง goroutines ที่ใช้ context นี้ให้หยุด
	cancel()

	if err := app.Shutdown(); err != nil {
		log.Fatalf("ผิดพลาดในการปิดเซิร์ฟเวอร์: %v", err)
	}

	log.Println("เซิร์ฟเวอร์ถูกปิดอย่างสง่างาม")
}
