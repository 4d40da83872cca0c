package main

import (
	"log"

	"github.com/techagentng/chatter/config"
	"github.com/techagentng/chatter/db"
	"github.com/techagentng/chatter/server"
	"github.com/techagentng/chatter/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	authRepo := db.NewAuthRepo(gormDB)
	conversationRepo := db.NewConversationRepo(gormDB)
	messageRepo := db.NewMessageRepo(gormDB)
	mediaRepo := db.NewMediaRepo(conf.AwsBucket)

	authService := services.NewAuthService(authRepo, conf)
	mediaService := services.NewMediaService(mediaRepo)
	conversationService := services.NewConversationService(conversationRepo, messageRepo, mediaService, conf)
	messageService := services.NewMessageService(messageRepo, conversationRepo, mediaService, conf)

	s := &server.Server{
		Config:                 conf,
		AuthRepository:         authRepo,
		AuthService:            authService,
		ConversationRepository: conversationRepo,
		ConversationService:    conversationService,
		MessageRepository:      messageRepo,
		MessageService:         messageService,
		MediaRepository:        mediaRepo,
		MediaService:           mediaService,
		DB:                     *gormDB,
	}

	s.Start()
}
