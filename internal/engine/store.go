package engine

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"log/slog"

	"github.com/go-enry/go-enry/v2"
	"github.com/neonvision/lang-engine/internal/normalize"
	"github.com/neonvision/lang-engine/internal/types"
)

// ErrUnknownDocument is returned for operations on a closed or unknown ID.
var ErrUnknownDocument = errors.New("unknown document")

// Document is one open buffer.
type Document struct {
	ID      string
	Name    string // display name
	Path    string // optional source file path
	Content string // normalized
	Dirty   bool   // content differs from last persisted state

	decision Decision
}

// Language returns the displayed language tag.
func (d *Document) Language() string {
	return d.decision.Tag()
}

// Locked reports whether the language decision is frozen.
func (d *Document) Locked() bool {
	return d.decision.Locked()
}

// OverrideFunc looks up a workspace language override for a source path.
type OverrideFunc func(path string) (string, bool)

// Store owns the open documents and routes open/edit/rename/close events into
// the controller. All methods must be called from a single goroutine: events
// are processed synchronously within one UI turn, so per-document evaluations
// never interleave.
//
// The store is never empty — closing the last document creates a blank one.
type Store struct {
	ctrl *Controller
	log  *slog.Logger

	docs        map[string]*Document
	order       []string // open order, for listing and active fallback
	activeID    string
	untitledSeq int

	overrideFor OverrideFunc
}

// Option configures a Store.
type Option func(*Store)

// WithOverrides installs a workspace override lookup consulted on file open.
func WithOverrides(fn OverrideFunc) Option {
	return func(s *Store) { s.overrideFor = fn }
}

// NewStore creates a store holding one blank document.
func NewStore(ctrl *Controller, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{
		ctrl: ctrl,
		log:  logger,
		docs: make(map[string]*Document),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.NewDocument()
	return s
}

// NewDocument creates a blank untitled document and makes it active.
func (s *Store) NewDocument() *Document {
	s.untitledSeq++
	doc := &Document{
		ID:   types.GenerateDocumentID(),
		Name: fmt.Sprintf("Untitled %d", s.untitledSeq),
	}
	s.add(doc)
	return doc
}

// Open materializes a document for a loaded file and makes it active. The ID
// derives from the path, so reopening a file returns the existing document.
// Binary content skips classification entirely.
func (s *Store) Open(path string, raw string) *Document {
	id := types.DocumentIDForPath(path)
	if doc, ok := s.docs[id]; ok {
		s.activeID = id
		return doc
	}

	doc := &Document{
		ID:      id,
		Name:    filepath.Base(path),
		Path:    path,
		Content: normalize.Normalize(raw),
	}

	if enry.IsBinary([]byte(raw)) {
		s.log.Info("binary content, skipping classification", "path", path)
	} else {
		var override string
		if s.overrideFor != nil {
			if tag, ok := s.overrideFor(path); ok {
				override = tag
			}
		}
		doc.decision = s.ctrl.OnOpened(doc.Name, doc.Content, override)
	}

	s.add(doc)
	s.log.Debug("document opened", "path", path, "language", doc.Language(), "locked", doc.Locked())
	return doc
}

// UpdateContent applies an edit to a document.
func (s *Store) UpdateContent(id string, raw string) error {
	doc, ok := s.docs[id]
	if !ok {
		return ErrUnknownDocument
	}

	doc.Content = normalize.Normalize(raw)
	doc.Dirty = true
	doc.decision = s.ctrl.OnContentChanged(doc.decision, doc.Name, doc.Content)
	return nil
}

// Rename changes the display name and re-enters the extension-authority path.
func (s *Store) Rename(id string, name string) error {
	doc, ok := s.docs[id]
	if !ok {
		return ErrUnknownDocument
	}

	doc.Name = name
	doc.decision = s.ctrl.OnRenamed(doc.decision, doc.Name, doc.Content)
	return nil
}

// SaveAs records a new source path, clears the dirty flag, and re-enters the
// extension-authority path under the new name.
func (s *Store) SaveAs(id string, path string) error {
	doc, ok := s.docs[id]
	if !ok {
		return ErrUnknownDocument
	}

	doc.Path = path
	doc.Name = filepath.Base(path)
	doc.Dirty = false
	doc.decision = s.ctrl.OnRenamed(doc.decision, doc.Name, doc.Content)
	return nil
}

// MarkSaved clears the dirty flag after a successful persistence write.
func (s *Store) MarkSaved(id string) error {
	doc, ok := s.docs[id]
	if !ok {
		return ErrUnknownDocument
	}
	doc.Dirty = false
	return nil
}

// SelectLanguage applies a manual language pick to a document.
func (s *Store) SelectLanguage(id string, tag string) error {
	doc, ok := s.docs[id]
	if !ok {
		return ErrUnknownDocument
	}
	doc.decision = s.ctrl.OnManualSelect(doc.decision, tag)
	return nil
}

// Close removes a document. Closing the last one immediately creates a fresh
// blank document, so the store is never empty.
func (s *Store) Close(id string) error {
	if _, ok := s.docs[id]; !ok {
		return ErrUnknownDocument
	}

	delete(s.docs, id)
	for i, openID := range s.order {
		if openID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	if len(s.docs) == 0 {
		s.NewDocument()
		return nil
	}

	if s.activeID == id {
		s.activeID = s.order[len(s.order)-1]
	}
	return nil
}

// SetActive selects the active document.
func (s *Store) SetActive(id string) error {
	if _, ok := s.docs[id]; !ok {
		return ErrUnknownDocument
	}
	s.activeID = id
	return nil
}

// Active returns the currently selected document.
func (s *Store) Active() *Document {
	return s.docs[s.activeID]
}

// Get returns a document by ID.
func (s *Store) Get(id string) (*Document, bool) {
	doc, ok := s.docs[id]
	return doc, ok
}

// Documents lists open documents in open order.
func (s *Store) Documents() []*Document {
	out := make([]*Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}

func (s *Store) add(doc *Document) {
	s.docs[doc.ID] = doc
	s.order = append(s.order, doc.ID)
	s.activeID = doc.ID
}
