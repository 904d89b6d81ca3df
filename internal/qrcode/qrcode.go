// Package qrcode encodes player identities into QR payloads and reads them back from scans.
package qrcode

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

// Format selects how a rendered code is returned
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat maps the query value to a Format. Unknown or empty values fall back to PNG.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatSVG)) {
		return FormatSVG
	}
	return FormatPNG
}

// The id must end the path segment; a closing quote covers URLs embedded in JSON.
var profilePath = regexp.MustCompile(`/perfil/(\d+)(?:[/?#"]|$)`)

// ProfileURL is the payload encoded into a player's code
func ProfileURL(baseURL string, playerID int64) string {
	return fmt.Sprintf("%s/perfil/%d", strings.TrimRight(baseURL, "/"), playerID)
}

// Decode extracts a player id from scanned text. It accepts, in order:
// a profile URL, a JSON object with player_id (number or numeric string), a bare number.
func Decode(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if m := profilePath.FindStringSubmatch(raw); m != nil {
		if id, err := strconv.ParseInt(m[1], 10, 64); err == nil && id > 0 {
			return id, true
		}
	}

	if strings.HasPrefix(raw, "{") {
		var payload struct {
			PlayerID json.RawMessage `json:"player_id"`
		}
		if err := json.Unmarshal([]byte(raw), &payload); err == nil && len(payload.PlayerID) > 0 {
			if id, ok := parseID(payload.PlayerID); ok {
				return id, true
			}
		}
	}

	if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
		return id, true
	}
	return 0, false
}

func parseID(v json.RawMessage) (int64, bool) {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		v = json.RawMessage(strings.TrimSpace(s))
	}
	id, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Normalize turns the scan body's qr_data into text. A JSON string is unquoted;
// an object or number is kept as its JSON text.
func Normalize(data json.RawMessage) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

// Renderer draws QR images at a fixed pixel size
type Renderer struct {
	size int
}

// NewRenderer creates a renderer producing size x size images
func NewRenderer(size int) *Renderer {
	return &Renderer{size: size}
}

// Render returns content as a PNG data URL or as SVG markup
func (r *Renderer) Render(content string, format Format) (string, error) {
	if format == FormatSVG {
		return r.svg(content)
	}
	png, err := qr.Encode(content, qr.Medium, r.size)
	if err != nil {
		return "", fmt.Errorf("encode qr png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func (r *Renderer) svg(content string) (string, error) {
	code, err := qr.New(content, qr.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr svg: %w", err)
	}
	bitmap := code.Bitmap()
	modules := len(bitmap)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		r.size, r.size, modules, modules)
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/><path fill="#000000" d="`)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, "M%d %dh1v1h-1z", x, y)
			}
		}
	}
	b.WriteString(`"/></svg>`)
	return b.String(), nil
}
