package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const baseURL = "http://localhost:8080/orders"

type order struct {
	ID string `json:"id"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	client := &http.Client{Timeout: 5 * time.Second}

	for ctx.Err() == nil {
		ids, err := listIDs(ctx, client)
		if err != nil {
			fmt.Println("Ошибка запроса:", err)
			time.Sleep(time.Second)
			continue
		}

		g, gCtx := errgroup.WithContext(ctx)
		for range rand.Intn(10) + 1 {
			g.Go(func() error {
				doRequest(gCtx, client, pickID(ids))
				return nil
			})
		}
		g.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func listIDs(ctx context.Context, client *http.Client) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var orders []order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids, nil
}

// Каждый пятый запрос идет к несуществующему заказу
func pickID(ids []string) string {
	if len(ids) == 0 || rand.Intn(5) == 0 {
		return uuid.NewString()
	}
	return ids[rand.Intn(len(ids))]
}

func doRequest(ctx context.Context, client *http.Client, id string) {
	url := baseURL + "/" + id
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
