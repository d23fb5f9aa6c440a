package main

import (
	"time"

	"github.com/RafaelReds/EcoMarket/internal/config"
	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	"github.com/RafaelReds/EcoMarket/internal/handler"
	"github.com/RafaelReds/EcoMarket/internal/infra/db"
	infraRepo "github.com/RafaelReds/EcoMarket/internal/infra/repository"
	"github.com/RafaelReds/EcoMarket/internal/server"
	"github.com/RafaelReds/EcoMarket/internal/session"
	"github.com/RafaelReds/EcoMarket/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//セッション（プロセス内ストア＋署名Cookie）
	store := session.NewStore()
	codec := session.NewCookieCodec(cfg.SessionSecret, 24*time.Hour)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, 10)
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	producerUC := usecase.NewProducerProductUsecase(productRepo, txManager)
	cartUC := usecase.NewCartUsecase(productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager)
	historyUC := usecase.NewHistoryUsecase(orderRepo)
	fulfillmentUC := usecase.NewFulfillmentUsecase(orderRepo, txManager)

	//Handler生成
	handlers := server.Handlers{
		Auth:        handler.NewAuthHandler(authUC, store),
		Catalog:     handler.NewCatalogHandler(catalogUC),
		Producer:    handler.NewProducerHandler(producerUC),
		Fulfillment: handler.NewFulfillmentHandler(fulfillmentUC),
		Cart:        handler.NewCartHandler(cartUC, checkoutUC),
		History:     handler.NewHistoryHandler(historyUC),
	}

	//Server起動
	e := server.New(store, codec, handlers)

	addr := ":" + cfg.Port
	if err := server.Start(e, addr); err != nil {
		e.Logger.Fatal(err)
	}
}
