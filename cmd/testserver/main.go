//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	image := flag.String("image", "", "PNG file served for every /images/ request")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: testserver [options] <feed.json>")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	feedPath := args[0]
	if _, err := os.Stat(feedPath); os.IsNotExist(err) {
		log.Fatalf("Feed file does not exist: %s", feedPath)
	}
	if *image != "" {
		if _, err := os.Stat(*image); os.IsNotExist(err) {
			log.Fatalf("Image file does not exist: %s", *image)
		}
	}

	http.HandleFunc("/data/", func(w http.ResponseWriter, _ *http.Request) {
		serveFile(w, feedPath, "application/json; charset=utf-8")
	})
	http.HandleFunc("/images/", func(w http.ResponseWriter, r *http.Request) {
		if *image == "" {
			http.Error(w, "Image not configured", http.StatusNotFound)
			log.Printf("Image %s requested but not configured", r.URL.Path)
			return
		}
		serveFile(w, *image, "image/png")
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("Feed: %s -> http://localhost%s/data/%s", feedPath, addr, filepath.Base(feedPath))
	if *image != "" {
		log.Printf("Image: %s -> http://localhost%s/images/gpv-{group}-emergency.png", *image, addr)
	}
	log.Println("\nFiles are read on each request, so you can edit them while the server is running.")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func serveFile(w http.ResponseWriter, path, contentType string) {
	content, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read file: %v", err), http.StatusInternalServerError)
		log.Printf("Error reading %s: %v", path, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(content)
	log.Printf("Served %s (%d bytes)", path, len(content))
}
