package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hackpage/internal/domain"
)

// HomepageStore implements domain.HomepageGateway using SQLite.
type HomepageStore struct {
	db *DB
}

func NewHomepageStore(db *DB) *HomepageStore {
	return &HomepageStore{db: db}
}

// LoadDraftOrPublished returns the working draft when one exists, the last
// published document otherwise, or (nil, nil) when the hackathon has no
// saved page at all.
func (s *HomepageStore) LoadDraftOrPublished(hackathonID string) (*domain.HomepageDocument, error) {
	var raw string
	err := s.db.Conn().QueryRow(
		`SELECT document_json FROM homepage_drafts WHERE hackathon_id = ?`, hackathonID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		err = s.db.Conn().QueryRow(
			`SELECT document_json FROM homepage_published WHERE hackathon_id = ?`, hackathonID,
		).Scan(&raw)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load homepage: %w", err)
	}

	var doc domain.HomepageDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode homepage document: %w", err)
	}
	return &doc, nil
}

// SaveDraft upserts the working copy for a hackathon.
func (s *HomepageStore) SaveDraft(hackathonID string, doc domain.HomepageDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode homepage document: %w", err)
	}
	_, err = s.db.Conn().Exec(
		`INSERT INTO homepage_drafts (hackathon_id, document_json, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(hackathon_id) DO UPDATE SET document_json = excluded.document_json, updated_at = excluded.updated_at`,
		hackathonID, string(raw), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// SavePublished upserts the compiled public artifact plus the raw document.
func (s *HomepageStore) SavePublished(hackathonID string, artifact domain.PublishedArtifact) error {
	raw, err := json.Marshal(artifact.Document)
	if err != nil {
		return fmt.Errorf("encode homepage document: %w", err)
	}
	_, err = s.db.Conn().Exec(
		`INSERT INTO homepage_published (hackathon_id, html, css, document_json, published_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(hackathon_id) DO UPDATE SET html = excluded.html, css = excluded.css,
		 document_json = excluded.document_json, published_at = excluded.published_at`,
		hackathonID, artifact.HTML, artifact.CSS, string(raw), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("save published: %w", err)
	}
	return nil
}

// LoadPublished returns the compiled artifact for public serving, or
// (nil, nil) when the hackathon has never published.
func (s *HomepageStore) LoadPublished(hackathonID string) (*domain.PublishedArtifact, error) {
	var a domain.PublishedArtifact
	var raw string
	err := s.db.Conn().QueryRow(
		`SELECT html, css, document_json FROM homepage_published WHERE hackathon_id = ?`, hackathonID,
	).Scan(&a.HTML, &a.CSS, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load published: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &a.Document); err != nil {
		return nil, fmt.Errorf("decode homepage document: %w", err)
	}
	return &a, nil
}

// DraftFingerprint returns a cheap change marker for the draft row, used
// by the draft watcher to detect edits from another process. Empty string
// when no draft exists.
func (s *HomepageStore) DraftFingerprint(hackathonID string) (string, error) {
	var updated string
	err := s.db.Conn().QueryRow(
		`SELECT COALESCE(updated_at, '') FROM homepage_drafts WHERE hackathon_id = ?`, hackathonID,
	).Scan(&updated)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return updated, nil
}

// DeleteDraft discards the working copy, e.g. after a publish that should
// become the new baseline.
func (s *HomepageStore) DeleteDraft(hackathonID string) error {
	_, err := s.db.Conn().Exec(`DELETE FROM homepage_drafts WHERE hackathon_id = ?`, hackathonID)
	return err
}
