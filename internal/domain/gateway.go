package domain

// PublishedArtifact is what an explicit save produces: the compiled public
// page plus the raw document retained for future re-editing.
type PublishedArtifact struct {
	HTML     string           `json:"html"`
	CSS      string           `json:"css"`
	Document HomepageDocument `json:"document"`
}

// HomepageGateway is the persistence boundary for landing pages. The editor
// core never touches storage directly; the SQLite implementation lives in
// internal/storage and tests substitute an in-memory fake.
type HomepageGateway interface {
	// LoadDraftOrPublished returns the working draft if one exists, the
	// published document otherwise, or (nil, nil) when the hackathon has
	// no saved page at all.
	LoadDraftOrPublished(hackathonID string) (*HomepageDocument, error)
	SaveDraft(hackathonID string, doc HomepageDocument) error
	SavePublished(hackathonID string, artifact PublishedArtifact) error
}
