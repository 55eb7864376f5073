package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/microcart/internal/handler"
	"github.com/segmentio/kafka-go"
)

var (
	cities    = []string{"Springfield", "Shelbyville", "Ogdenville", "North Haverbrook"}
	states    = []string{"IL", "OR", "KY", "OH"}
	countries = []string{"US", "CA"}
)

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

func generateRandomOrder() handler.CreateOrderRequest {
	items := make([]handler.OrderItem, 0, 3)
	for range rand.Intn(3) + 1 {
		items = append(items, handler.OrderItem{
			ProductID: "prod-" + randomString(6),
			Quantity:  rand.Intn(5) + 1,
			Price:     float64(rand.Intn(10000)) / 100,
		})
	}

	return handler.CreateOrderRequest{
		UserID: fmt.Sprintf("user%d", rand.Intn(1000)),
		Items:  items,
		ShippingInfo: &handler.ShippingInfo{
			Address: fmt.Sprintf("%d Main St", rand.Intn(1000)+1),
			City:    pick(cities),
			State:   pick(states),
			ZipCode: fmt.Sprintf("%05d", rand.Intn(99999)),
			Country: pick(countries),
		},
	}
}

func main() {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP("localhost:9092"),
		Topic:                  "orders",
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			// каждый десятый заказ без товаров, такие сообщения уходят в DLQ
			if rand.Intn(10) == 0 {
				order.Items = nil
			}
			data, _ := json.Marshal(order)
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to write order:", err)
				continue
			}
			log.Println("order generated for", order.UserID, "items:", len(order.Items))
		case <-ctx.Done():
			return
		}
	}
}
