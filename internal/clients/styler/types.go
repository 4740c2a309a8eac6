package styler

// Wire types for the style-transform JSON protocol.

type transformContents struct {
	Translated  string `json:"translated"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

type transformResponse struct {
	Contents transformContents `json:"contents"`
}

type transformErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
