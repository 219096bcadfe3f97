package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const wasmFile = "sprouts.wasm"

func main() {
	var (
		addr    string
		wasmDir string
		noOpen  bool
	)
	flag.StringVar(&addr, "addr", ":8080", "Listen address")
	flag.StringVar(&wasmDir, "dir", "web", "Directory the WASM build is written to and served from")
	flag.BoolVar(&noOpen, "no-open", false, "Do not open a browser")
	flag.Parse()

	// Create web directory if it doesn't exist
	if err := os.MkdirAll(wasmDir, 0755); err != nil {
		log.Fatal("Failed to create web directory:", err)
	}

	fmt.Println("Building WASM version...")
	if err := buildWASM(wasmDir); err != nil {
		log.Fatal("Failed to build WASM:", err)
	}

	fmt.Println("Copying required files...")
	if err := copyWASMExec(wasmDir); err != nil {
		log.Fatal("Failed to copy files:", err)
	}

	fmt.Println("Creating HTML file...")
	if err := createHTMLFile(wasmDir); err != nil {
		log.Fatal("Failed to create HTML file:", err)
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           newRouter(wasmDir),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	url := "http://localhost" + addr
	fmt.Printf("Sprouts server starting on %s\n", url)
	fmt.Printf("Serving files from: %s/\n", wasmDir)
	fmt.Printf("Add a query for more starting dots, e.g. %s/?5\n", url)

	if !noOpen {
		openBrowser(url)
	}

	log.Fatal(server.ListenAndServe())
}

// newRouter serves dir with the headers the WASM build needs.
func newRouter(dir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(wasmHeaders)

	r.Handle("/*", http.FileServer(http.Dir(dir)))
	return r
}

// wasmHeaders sets cross-origin isolation and the wasm MIME type.
func wasmHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Embedder-Policy", "require-corp")
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")

		if filepath.Ext(r.URL.Path) == ".wasm" {
			w.Header().Set("Content-Type", "application/wasm")
		}
		next.ServeHTTP(w, r)
	})
}

func buildWASM(dir string) error {
	cmd := exec.Command("go", "build", "-o", filepath.Join(dir, wasmFile), "./cmd/sprouts")
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func copyWASMExec(dir string) error {
	// wasm_exec.js moved from misc/wasm to lib/wasm in Go 1.24
	goRoot := runtime.GOROOT()
	var data []byte
	var err error
	for _, sub := range []string{"lib", "misc"} {
		data, err = os.ReadFile(filepath.Join(goRoot, sub, "wasm", "wasm_exec.js"))
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to read wasm_exec.js: %w", err)
	}

	destPath := filepath.Join(dir, "wasm_exec.js")
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return fmt.Errorf("failed to copy wasm_exec.js: %w", err)
	}
	return nil
}

func createHTMLFile(dir string) error {
	htmlPath := filepath.Join(dir, "index.html")

	// Check if index.html already exists, don't overwrite it
	if _, err := os.Stat(htmlPath); err == nil {
		fmt.Println("index.html already exists, keeping existing version")
		return nil
	}

	fmt.Println("Creating new index.html (no existing file found)")
	return os.WriteFile(htmlPath, []byte(indexHTML), 0644)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Sprouts</title>
    <style>
        html, body {
            margin: 0;
            height: 100%;
            overflow: hidden;
            background: #eff1f5;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            color: #181825;
        }
        .loading, .error {
            position: absolute;
            top: 40%;
            width: 100%;
            text-align: center;
            font-size: 1.2em;
        }
        .error {
            display: none;
            color: #d20f39;
        }
    </style>
</head>
<body>
    <div class="loading" id="loading">Loading Sprouts...</div>
    <div class="error" id="error">
        <div>Failed to load the game. Check the browser console for details.</div>
        <div id="error-details" style="margin-top: 10px; font-family: monospace; font-size: 0.8em;"></div>
    </div>

    <script src="wasm_exec.js"></script>
    <script>
        const go = new Go();

        WebAssembly.instantiateStreaming(fetch("` + wasmFile + `"), go.importObject)
            .then((result) => {
                document.getElementById('loading').style.display = 'none';
                go.run(result.instance);
            })
            .catch((err) => {
                console.error('Failed to load WASM:', err);
                document.getElementById('loading').style.display = 'none';
                document.getElementById('error').style.display = 'block';
                document.getElementById('error-details').textContent = err.toString();
            });
    </script>
</body>
</html>`

func openBrowser(url string) {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", "openbsd", "netbsd"
		cmd = "xdg-open"
	}
	args = append(args, url)

	// Don't wait for the command to finish and ignore errors
	go exec.Command(cmd, args...).Run()
}
