package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"hackpage/internal/compile"
	"hackpage/internal/domain"
	"hackpage/internal/editor"
)

// Options configures editing sessions.
type Options struct {
	// AutosaveInterval is how often drafts are flushed; zero disables
	// autosave entirely.
	AutosaveInterval time.Duration
	// PublishDir, when set, makes explicit saves also write the public
	// index.html/style.css under <PublishDir>/<hackathonId>/.
	PublishDir string
	// AssetDir, when set, is watched for image changes so previews can
	// refresh.
	AssetDir string
}

// EditorService opens and manages landing-page editing sessions. All
// storage access goes through the HomepageGateway; the service itself
// never touches SQL.
type EditorService struct {
	gateway domain.HomepageGateway
	emitter EventEmitter
	opts    Options
}

// NewEditorService creates an EditorService.
func NewEditorService(gateway domain.HomepageGateway, emitter EventEmitter, opts Options) *EditorService {
	return &EditorService{gateway: gateway, emitter: emitter, opts: opts}
}

// Session is one live editing session for one hackathon's landing page.
// It owns the document store, the drag reducer, and the background actors
// (autosave, watchers), all of which are torn down by Close.
type Session struct {
	svc         *EditorService
	hackathonID string

	store *editor.Store
	drag  *editor.Reducer

	autosave   *Autosave
	assets     *AssetWatcher
	draftWatch *draftWatcher
}

// Open loads the hackathon's draft (or published page, or a fresh empty
// document) and starts the session's background actors.
func (s *EditorService) Open(ctx context.Context, hackathonID string, hctx domain.HackathonContext) (*Session, error) {
	loaded, err := s.gateway.LoadDraftOrPublished(hackathonID)
	if err != nil {
		return nil, fmt.Errorf("open homepage: %w", err)
	}
	var doc domain.HomepageDocument
	if loaded == nil {
		doc = domain.NewHomepageDocument(hackathonID)
	} else {
		doc = loaded.Clone()
		doc.HackathonID = hackathonID
	}

	store := editor.NewStore(doc, hctx)
	sess := &Session{
		svc:         s,
		hackathonID: hackathonID,
		store:       store,
		drag:        editor.NewReducer(store),
	}

	if s.opts.AutosaveInterval > 0 {
		sess.autosave = NewAutosave(ctx, s.opts.AutosaveInterval, sess.FlushDraft)
		if err := sess.autosave.Start(); err != nil {
			log.Printf("autosave: disabled: %v", err)
			sess.autosave = nil
		}
	}
	if s.opts.AssetDir != "" {
		w, err := WatchAssets(ctx, s.opts.AssetDir, s.emitter)
		if err != nil {
			log.Printf("assets: watcher disabled: %v", err)
		} else {
			sess.assets = w
		}
	}
	if fp, ok := s.gateway.(DraftFingerprinter); ok {
		sess.draftWatch = newDraftWatcher(ctx, hackathonID, fp, s.emitter)
		sess.draftWatch.markClean()
		sess.draftWatch.Start()
	}

	return sess, nil
}

// Store exposes the document store's mutation API to the hosting editor.
func (s *Session) Store() *editor.Store { return s.store }

// Drag exposes the drag reducer's event handlers.
func (s *Session) Drag() *editor.Reducer { return s.drag }

// HackathonID returns the hackathon this session edits.
func (s *Session) HackathonID() string { return s.hackathonID }

// Preview compiles the current document for live preview rendering.
func (s *Session) Preview() compile.Result {
	doc := s.store.Document()
	return compile.Compile(doc.Blocks, doc.Colors, s.store.Context())
}

// FlushDraft serializes the current document as a draft. Documents with no
// blocks yet are skipped — there is nothing worth saving. Used both by the
// autosave scheduler and by explicit draft saves.
func (s *Session) FlushDraft(ctx context.Context) error {
	doc := s.store.Document()
	if len(doc.Blocks) == 0 {
		return nil
	}
	if err := s.svc.gateway.SaveDraft(s.hackathonID, doc); err != nil {
		return err
	}
	if s.draftWatch != nil {
		s.draftWatch.markClean()
	}
	s.svc.emitter.Emit(ctx, "homepage:draft-saved", map[string]string{"hackathonId": s.hackathonID})
	return nil
}

// Publish compiles the current document and writes both the compiled
// artifact and the raw document through the gateway. The draft is updated
// too so draft and published never diverge right after a save.
func (s *Session) Publish(ctx context.Context) (compile.Result, error) {
	doc := s.store.Document().Clone()
	res := compile.Compile(doc.Blocks, doc.Colors, s.store.Context())

	artifact := domain.PublishedArtifact{HTML: res.HTML, CSS: res.CSS, Document: doc}
	if err := s.svc.gateway.SavePublished(s.hackathonID, artifact); err != nil {
		return compile.Result{}, fmt.Errorf("publish homepage: %w", err)
	}
	if err := s.svc.gateway.SaveDraft(s.hackathonID, doc); err != nil {
		return compile.Result{}, fmt.Errorf("save draft after publish: %w", err)
	}
	if s.draftWatch != nil {
		s.draftWatch.markClean()
	}

	if s.svc.opts.PublishDir != "" {
		if err := s.writePublishDir(res); err != nil {
			// The artifact is safely in the gateway; the on-disk copy is
			// a convenience and must not fail the save.
			log.Printf("publish: write output dir: %v", err)
		}
	}

	s.svc.emitter.Emit(ctx, "homepage:published", map[string]string{"hackathonId": s.hackathonID})
	return res, nil
}

func (s *Session) writePublishDir(res compile.Result) error {
	dir := filepath.Join(s.svc.opts.PublishDir, s.hackathonID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("mkdir %q: %w", dir, err)
	}
	title := s.store.Context().Title
	if title == "" {
		title = "Hackathon"
	}
	page := compile.Page(title, res.HTML)
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte(res.CSS), 0644); err != nil {
		return fmt.Errorf("write style.css: %w", err)
	}
	return nil
}

// Close tears down autosave and watchers. The in-memory document and its
// history die with the session; persisted state lives in the gateway.
func (s *Session) Close() {
	if s.autosave != nil {
		s.autosave.Stop()
		s.autosave = nil
	}
	if s.assets != nil {
		s.assets.Stop()
		s.assets = nil
	}
	if s.draftWatch != nil {
		s.draftWatch.Stop()
		s.draftWatch = nil
	}
}
