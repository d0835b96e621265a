// README: Interactive demo for the AI charging assistant.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"evconnect/internal/modules/assist"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	svc, err := assist.NewService(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize assistant: %v", err)
	}
	defer svc.Close()

	fmt.Println("EV Charge Connect assistant demo. Type a question, or 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			continue
		}
		if msg == "quit" || msg == "exit" {
			return
		}

		reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		reply, err := svc.Chat(reqCtx, msg)
		cancel()
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Println(reply)
	}
}
