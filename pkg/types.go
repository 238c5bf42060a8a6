package pkg

// ChatRequest is one inbound conversation turn. UserID is an opaque stable
// key; the server generates one when it is empty so anonymous clients can
// still hold a multi-turn dialogue by echoing it back.
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// ChatResponse carries the bot's reply and the user key the session is
// stored under.
type ChatResponse struct {
	UserID string `json:"user_id"`
	Reply  string `json:"reply"`
}

// LookupResponse is the best match for a read-only knowledge lookup
// (FAQ, symptom, risk). Similarity is cosine similarity of the match;
// zero when nothing was found and Answer carries the fallback text.
type LookupResponse struct {
	Answer     string  `json:"answer"`
	Similarity float64 `json:"similarity"`
}

// SchemeMatch is one entry of a scheme lookup.
type SchemeMatch struct {
	Purpose    string  `json:"purpose"`
	Similarity float64 `json:"similarity"`
}

// SchemeListResponse returns the top scheme matches; Message is set when
// the list is empty.
type SchemeListResponse struct {
	Results []SchemeMatch `json:"results"`
	Message string        `json:"message,omitempty"`
}

// ConsultResponse points the user at a live doctor consultation.
type ConsultResponse struct {
	DoctorLink string `json:"doctor_link"`
	Note       string `json:"note"`
}
