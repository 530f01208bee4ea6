package handler

import (
	"errors"
	"net/url"
	"strings"
)

var errUnsupportedVideoHost = errors.New("video must be hosted on youtube, twitch, vimeo, bilibili or everyplay")

// Hébergeurs acceptés pour les preuves vidéo
var allowedVideoHosts = map[string]struct{}{
	"youtube.com":     {},
	"youtu.be":        {},
	"twitch.tv":       {},
	"clips.twitch.tv": {},
	"vimeo.com":       {},
	"bilibili.com":    {},
	"everyplay.com":   {},
}

// validateVideo vérifie qu'une URL de preuve est absolue, en http(s) et
// hébergée chez un fournisseur accepté
func validateVideo(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return errors.New("invalid video url")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("video url must use http or https")
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if _, ok := allowedVideoHosts[host]; !ok {
		return errUnsupportedVideoHost
	}

	return nil
}
