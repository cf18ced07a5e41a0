// Package main implements very simple grpc client that can be used for testing orgrepos grpc server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	appGrpc "github.com/m-zajac/orgrepos/internal/api/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	serverAddr = flag.String("s", "localhost:9090", "The server address in the format of host:port")
	search     = flag.String("search", "", "Language search, empty lists every member")
	timeout    = flag.Duration("timeout", 5*time.Minute, "Call timeout")
)

func main() {
	flag.Parse()

	conn, err := grpc.Dial(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	client := appGrpc.NewClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	users, err := client.UserLanguages(ctx, *search)
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}

	fmt.Print("Login                | Languages\n")
	fmt.Print("------------------------------------------\n")
	for _, u := range users {
		langs := make([]string, 0, len(u.Languages))
		for lang := range u.Languages {
			langs = append(langs, lang)
		}
		sort.Strings(langs)

		fmt.Printf("%-20s |", u.Member.Login)
		for _, lang := range langs {
			fmt.Printf(" %s:%d", lang, u.Languages[lang])
		}
		fmt.Println()
	}
}
