// Package main implements very simple grpc client that can be used for testing contributors proxy grpc server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/alecthomas/kingpin"
	appGrpc "github.com/m-zajac/contributorgallery/internal/api/grpc"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	serverAddr = kingpin.Flag("server", "The server address in the format of host:port").Short('s').Default("localhost:9090").String()
	owner      = kingpin.Flag("owner", "Repository owner").Short('o').Required().String()
	repo       = kingpin.Flag("repo", "Repository name").Short('r').Required().String()
	timeout    = kingpin.Flag("timeout", "Request timeout").Default("30s").Duration()
)

func main() {
	kingpin.Parse()

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	client := appGrpc.NewClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := client.List(ctx, &appGrpc.ListRequest{
		Owner: *owner,
		Repo:  *repo,
	})
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}

	fmt.Println("")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Login", "Contributions", "Profile"})
	table.SetBorder(false)
	table.AppendBulk(rows(resp.Contributors))
	table.Render()
	fmt.Println("")
}

func rows(contributors []*appGrpc.Contributor) [][]string {
	data := make([][]string, 0, len(contributors))
	for _, c := range contributors {
		data = append(data, []string{
			c.Login,
			strconv.Itoa(int(c.Contributions)),
			c.HTMLURL,
		})
	}
	return data
}
