package main

import (
	"fmt"
	"time"

	"github.com/comunidades/feed-api/internal/config"
	"github.com/comunidades/feed-api/internal/logger"
	"github.com/comunidades/feed-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func strPtr(value string) *string {
	return &value
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, false); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(nil); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加用户
	usuarios := []models.Usuario{
		{Username: strPtr("marina"), Usericon: strPtr("https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200")},
		{Username: strPtr("joao.dev"), Usericon: strPtr("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200")},
		{Username: strPtr("lia"), Usericon: nil},
	}
	usuarioIDs := map[string]string{}
	for _, u := range usuarios {
		name := *u.Username
		var existing models.Usuario
		if err := models.DB.Where("username = ?", name).First(&existing).Error; err == nil {
			stdLog.Printf("Usuario already exists: %s", name)
			usuarioIDs[name] = existing.ID
			continue
		}
		if err := models.DB.Create(&u).Error; err != nil {
			stdLog.Printf("Failed to create usuario %s: %v", name, err)
			continue
		}
		stdLog.Printf("Created usuario: %s", name)
		usuarioIDs[name] = u.ID
	}

	// 添加社区
	comunidades := []models.Comunidade{
		{
			Nome:      "Fotografia",
			Descricao: strPtr("Fotos, câmeras e técnicas de edição."),
			IconURL:   strPtr("https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=200"),
			BannerURL: strPtr("https://images.unsplash.com/photo-1452587925148-ce544e77e70d?w=1200"),
		},
		{
			Nome:      "Programação",
			Descricao: strPtr("Dúvidas, projetos e novidades de desenvolvimento."),
			IconURL:   strPtr("https://images.unsplash.com/photo-1515879218367-8466d910aaa4?w=200"),
		},
		{
			Nome: "Culinária",
		},
	}
	comunidadeIDs := map[string]string{}
	for _, c := range comunidades {
		var existing models.Comunidade
		if err := models.DB.Where("nome = ?", c.Nome).First(&existing).Error; err == nil {
			stdLog.Printf("Comunidade already exists: %s", c.Nome)
			comunidadeIDs[c.Nome] = existing.ID
			continue
		}
		if err := models.DB.Create(&c).Error; err != nil {
			stdLog.Printf("Failed to create comunidade %s: %v", c.Nome, err)
			continue
		}
		stdLog.Printf("Created comunidade: %s", c.Nome)
		comunidadeIDs[c.Nome] = c.ID
	}

	var postCount int64
	if err := models.DB.Model(&models.Post{}).Count(&postCount).Error; err != nil {
		stdLog.Fatalf("Failed to count posts: %v", err)
	}
	if postCount > 0 {
		stdLog.Printf("Posts already seeded: %d", postCount)
		return
	}

	// 添加帖子
	authors := []string{"marina", "joao.dev", "lia"}
	topics := []string{"Fotografia", "Programação", "Culinária"}
	base := time.Now().Add(-48 * time.Hour)
	posts := make([]models.Post, 0, 31)
	for i := 0; i < 30; i++ {
		author := usuarioIDs[authors[i%len(authors)]]
		comunidade := comunidadeIDs[topics[i%len(topics)]]
		plain := fmt.Sprintf("Post de exemplo número %d em %s. %s", i+1, topics[i%len(topics)], longBody(i))
		posts = append(posts, models.Post{
			UsuarioID:    optionalID(author),
			ComunidadeID: optionalID(comunidade),
			Title:        fmt.Sprintf("Exemplo %02d: %s", i+1, topics[i%len(topics)]),
			BannerURL:    bannerFor(i),
			BannerIsGif:  i%7 == 0,
			HTMLContent:  strPtr("<p>" + plain + "</p>"),
			PlainText:    strPtr(plain),
			CreatedAt:    base.Add(time.Duration(i) * 30 * time.Minute),
		})
	}
	// 作者已不存在的帖子
	orphanAuthor := uuid.NewString()
	posts = append(posts, models.Post{
		UsuarioID:    &orphanAuthor,
		ComunidadeID: optionalID(comunidadeIDs["Programação"]),
		Title:        "Post de uma conta removida",
		HTMLContent:  strPtr("<p>O autor deste post não existe mais.</p>"),
		PlainText:    strPtr("O autor deste post não existe mais."),
		CreatedAt:    base.Add(-time.Hour),
	})

	if err := models.DB.Session(&gorm.Session{CreateBatchSize: 50}).Create(&posts).Error; err != nil {
		stdLog.Fatalf("Failed to create posts: %v", err)
	}
	stdLog.Printf("Created posts: %d", len(posts))
	logger.Infow("seed_completed",
		"usuarios", len(usuarioIDs),
		"comunidades", len(comunidadeIDs),
		"posts", len(posts),
	)
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func bannerFor(i int) *string {
	if i%7 == 0 {
		return strPtr("https://media.giphy.com/media/3o7aD2saalBwwftBIY/giphy.gif")
	}
	return strPtr(fmt.Sprintf("https://picsum.photos/seed/post-%d/1200/400", i))
}

func longBody(i int) string {
	if i%3 != 0 {
		return "Texto curto."
	}
	return "Este texto é propositalmente longo para que o resumo exibido no feed seja cortado " +
		"depois de cento e sessenta caracteres, mostrando as reticências no final do trecho " +
		"e mantendo o conteúdo completo disponível apenas na página do post."
}
