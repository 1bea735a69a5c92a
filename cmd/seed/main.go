package main

import (
	"context"
	"log"

	"shop/internal/config"
	"shop/internal/domain/model"
	"shop/internal/infra/db"
	infraRepo "shop/internal/infra/repository"

	"github.com/joho/godotenv"
)

// カタログにサンプル商品を投入する。開発用。
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatal(err)
	}

	productRepo := infraRepo.NewProductGormRepository(gormDB)

	//価格はセント単位
	products := []model.Product{
		{Name: "Wireless Headphones", Description: "Over-ear, noise cancelling", Price: 7999, ImageURL: "/images/headphones.jpg"},
		{Name: "Coffee Maker", Description: "12-cup programmable coffee maker", Price: 4999, ImageURL: "/images/coffee-maker.jpg"},
		{Name: "Desk Lamp", Description: "LED lamp with adjustable arm", Price: 2999, ImageURL: "/images/desk-lamp.jpg"},
		{Name: "Water Bottle", Description: "Insulated stainless steel, 750ml", Price: 1999, ImageURL: "/images/water-bottle.jpg"},
		{Name: "Notebook", Description: "A5 dotted, 180 pages", Price: 899, ImageURL: "/images/notebook.jpg"},
		{Name: "Backpack", Description: "20L daypack with laptop sleeve", Price: 5499, ImageURL: "/images/backpack.jpg"},
	}

	ctx := context.Background()
	for _, p := range products {
		created, err := productRepo.Create(ctx, p)
		if err != nil {
			log.Fatalf("seed %q: %v", p.Name, err)
		}
		log.Printf("created product id=%d name=%q", created.ID, created.Name)
	}
}
