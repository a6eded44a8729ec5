// colorgen resolves hex colors against a color-name catalog web service and
// emits a Go source file of named color constants. Responses are cached on
// disk so repeated runs stay offline.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const defaultColors = "000000,9f2172,e32636"

const catalogURL = "https://www.thecolorapi.com/id?hex="

type catalogResponse struct {
	Name struct {
		Value string `json:"value"`
	} `json:"name"`
}

type colorConst struct {
	name    string
	r, g, b float64
}

func main() {
	colors := flag.String("colors", defaultColors, "comma-separated hex colors to resolve")
	outPath := flag.String("out", "colors_gen.go", "output Go source path")
	pkg := flag.String("package", "color", "package name for the generated file")
	flag.Parse()

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		log.Fatalf("Failed to locate cache dir: %v", err)
	}
	cacheDir = filepath.Join(cacheDir, "prism-colorgen")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		log.Fatalf("Failed to create cache dir: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	var consts []colorConst
	for _, hex := range strings.Split(*colors, ",") {
		hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
		if hex == "" {
			continue
		}

		name, err := lookupName(client, cacheDir, hex)
		if err != nil {
			log.Fatalf("Failed to resolve %q: %v", hex, err)
		}

		c, err := parseHex(hex)
		if err != nil {
			log.Fatalf("Failed to parse %q: %v", hex, err)
		}
		c.name = constName(name)
		consts = append(consts, c)
	}

	if err := writeSource(*outPath, *pkg, consts); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	fmt.Printf("Wrote %d colors to %s\n", len(consts), *outPath)
}

// lookupName returns the catalog name for a hex color, hitting the disk
// cache first.
func lookupName(client *http.Client, cacheDir, hex string) (string, error) {
	cachePath := filepath.Join(cacheDir, strings.ToLower(hex))

	if cached, err := os.ReadFile(cachePath); err == nil {
		return string(cached), nil
	}

	resp, err := client.Get(catalogURL + hex)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("catalog returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed catalogResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.Name.Value == "" {
		return "", fmt.Errorf("catalog response carries no name")
	}

	if err := os.WriteFile(cachePath, []byte(parsed.Name.Value), 0o644); err != nil {
		return "", err
	}

	return parsed.Name.Value, nil
}

func parseHex(hex string) (colorConst, error) {
	if len(hex) != 6 {
		return colorConst{}, fmt.Errorf("expected 6 hex digits, got %d", len(hex))
	}

	var channels [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return colorConst{}, err
		}
		channels[i] = float64(v) / 255.0
	}

	return colorConst{r: channels[0], g: channels[1], b: channels[2]}, nil
}

// constName turns a catalog name like "Royal Heath" into RoyalHeath.
func constName(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		cleaned := strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, word)
		if cleaned == "" {
			continue
		}
		b.WriteString(strings.ToUpper(cleaned[:1]))
		b.WriteString(cleaned[1:])
	}
	return b.String()
}

func writeSource(path, pkg string, consts []colorConst) error {
	var b strings.Builder

	b.WriteString("// Code generated by colorgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\nvar (\n", pkg)
	for _, c := range consts {
		fmt.Fprintf(&b, "\t%s = Color{R: %.5f, G: %.5f, B: %.5f}\n", c.name, c.r, c.g, c.b)
	}
	b.WriteString(")\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
