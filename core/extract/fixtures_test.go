package extract

const (
	testPageURL = "https://www.tiktok.com/@user/video/123"

	escapedPlayAddr = "https:\\u002F\\u002Fcdn.example\\u002Fv.mp4"
	escapedMusicURL = "https:\\u002F\\u002Fcdn.example\\u002Fm.mp3"

	wantVideoURL = "https://cdn.example/v.mp4"
	wantMusicURL = "https://cdn.example/m.mp3"
)

func videoDataScript(playAddr, musicURL string) string {
	script := `window.__INIT_PROPS__ = {"/v/:id":{"videoData":{"itemInfos":{"id":"123"}`
	if playAddr != "" {
		script += `,"playAddr":"` + playAddr + `"`
	}
	if musicURL != "" {
		script += `,"musicUrl":"` + musicURL + `"`
	}
	return script + `}}}`
}

func pageHTML(scripts ...string) string {
	html := `<!DOCTYPE html><html><head>
<meta property="og:url" content="https://www.tiktok.com/@user/video/123">
<meta property="og:title" content="A dance video">
<meta property="og:image" content="https://cdn.example/thumb.jpg">
<meta property="og:author" content="user">
</head><body>`
	for _, s := range scripts {
		html += `<script>` + s + `</script>`
	}
	return html + `</body></html>`
}
