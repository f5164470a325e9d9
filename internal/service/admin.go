package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/Muhamedyehya/aqar-admin/internal/domain/auth"
	"github.com/Muhamedyehya/aqar-admin/internal/domain/model"
	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
	"github.com/Muhamedyehya/aqar-admin/internal/ports"
)

// User-visible result messages.
const (
	MsgListFailed         = "failed to load listings"
	MsgSaved              = "listing saved"
	MsgSaveFailed         = "failed to save listing"
	MsgDeleted            = "listing deleted"
	MsgDeleteFailed       = "failed to delete listing"
	MsgSettingsSaved      = "settings saved"
	MsgSettingsSaveFailed = "failed to save settings"
	MsgNetwork            = "could not reach the server, please try again"
)

// ErrNotConfirmed is returned by Delete when the confirmation gate was not satisfied.
var ErrNotConfirmed = errors.New("delete not confirmed")

// MessageKind classifies a result message.
type MessageKind string

const (
	MessageNone    MessageKind = ""
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is the latest operation outcome shown to the operator.
type Message struct {
	Kind MessageKind
	Text string
}

// IsError reports whether the message describes a failure.
func (m Message) IsError() bool { return m.Kind == MessageError }

// Confirmer gates destructive operations behind an interactive confirmation.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// SessionView is the read-only session access the controller needs.
type SessionView interface {
	Session() domainauth.Session
}

// AdminState is a snapshot of everything the console displays.
type AdminState struct {
	Listings []model.Listing
	Editing  *model.Listing
	Settings model.Settings
	Loading  bool
	Saving   bool
	Message  Message
}

// AdminControllerOptions groups dependencies for AdminController.
type AdminControllerOptions struct {
	Gateways AdminGateways // Required: remote listing and settings resources
	Session  SessionView   // Optional: used for advisory privilege logging only
	Logger   *slog.Logger  // Optional: structured logger
}

// AdminGateways bundles the remote resources the controller drives.
type AdminGateways struct {
	Ads      ports.AdsGateway
	Settings ports.SettingsGateway
}

// AdminController owns the listing collection, the single edit buffer and the
// settings record. Gateway calls run without holding the lock, so overlapping
// operations are all sent and the last response to arrive wins.
type AdminController struct {
	ads      ports.AdsGateway
	settings ports.SettingsGateway
	session  SessionView
	logger   *slog.Logger
	images   ImageAttachments

	mu          sync.Mutex
	listings    []model.Listing
	editing     *model.Listing
	siteConfig  model.Settings
	loadingOps  int
	savingOps   int
	lastMessage Message
}

// NewAdminController constructs an AdminController with an empty collection.
func NewAdminController(opts AdminControllerOptions) *AdminController {
	if opts.Gateways.Ads == nil {
		panic("AdsGateway is required")
	}
	if opts.Gateways.Settings == nil {
		panic("SettingsGateway is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminController{
		ads:      opts.Gateways.Ads,
		settings: opts.Gateways.Settings,
		session:  opts.Session,
		logger:   logger.With("component", "admin"),
		listings: []model.Listing{},
	}
}

// Refresh loads listings and settings concurrently, as the console does on start.
func (c *AdminController) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return c.ListListings(ctx) })
	g.Go(func() error { return c.LoadSettings(ctx) })
	return g.Wait()
}

// ListListings replaces the collection with the remote one. On failure the
// previous collection is kept and an error message is recorded.
func (c *AdminController) ListListings(ctx context.Context) error {
	c.mu.Lock()
	c.loadingOps++
	c.mu.Unlock()

	listings, err := c.ads.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadingOps--
	if err != nil {
		c.lastMessage = Message{Kind: MessageError, Text: describeFailure(err, MsgListFailed)}
		c.logger.ErrorContext(ctx, "list listings failed", "error", err)
		return fmt.Errorf("list listings: %w", err)
	}
	if listings == nil {
		listings = []model.Listing{}
	}
	c.listings = listings
	return nil
}

// SelectForEdit makes a copy of listing the edit buffer. A nil listing starts a blank draft.
func (c *AdminController) SelectForEdit(listing *model.Listing) {
	draft := model.NewDraft()
	if listing != nil {
		draft = listing.Clone()
	}
	c.mu.Lock()
	c.editing = &draft
	c.mu.Unlock()
}

// SelectByID starts editing the listing with id from the loaded collection.
func (c *AdminController) SelectByID(id string) error {
	id = strings.TrimSpace(id)
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.listings {
		if l.ID == id {
			draft := l.Clone()
			c.editing = &draft
			return nil
		}
	}
	return apperrors.NotFoundf("listing %q not found", id)
}

// UpdateField sets a text field on the edit buffer, starting a draft if none is open.
func (c *AdminController) UpdateField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	buf := c.bufferLocked()
	if err := buf.SetField(name, value); err != nil {
		return apperrors.ValidationField(name, err.Error())
	}
	return nil
}

// AttachImage appends url to the edit buffer's images, starting a draft if none is open.
func (c *AdminController) AttachImage(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	buf := c.bufferLocked()
	buf.Images = c.images.Append(buf.Images, url)
}

// RemoveImage drops the image at index from the edit buffer. Out-of-range is a no-op.
func (c *AdminController) RemoveImage(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == nil {
		return
	}
	c.editing.Images = c.images.RemoveAt(c.editing.Images, index)
}

// ConsumeUploads attaches the URL of every successful upload message in
// arrival order until msgs is closed or ctx is done. It returns the number
// of images attached.
func (c *AdminController) ConsumeUploads(ctx context.Context, msgs <-chan model.UploadMessage) int {
	attached := 0
	for {
		select {
		case <-ctx.Done():
			return attached
		case msg, ok := <-msgs:
			if !ok {
				return attached
			}
			if msg.Err != nil {
				c.logger.WarnContext(ctx, "image upload failed", "error", msg.Err)
				continue
			}
			url, ok := msg.SuccessURL()
			if !ok {
				continue
			}
			c.AttachImage(url)
			attached++
		}
	}
}

// Save sends the edit buffer: create when it has no id, update otherwise.
// On success the buffer is cleared and the collection re-fetched; on failure
// the buffer stays open for correction.
func (c *AdminController) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.editing == nil {
		c.mu.Unlock()
		return nil
	}
	sent := c.editing
	draft := sent.Clone()
	c.savingOps++
	c.lastMessage = Message{}
	c.mu.Unlock()

	c.noteUnprivileged(ctx, "save listing")

	var err error
	if draft.IsNew() {
		draft.ID = ""
		err = c.ads.Create(ctx, draft)
	} else {
		err = c.ads.Update(ctx, draft.ID, draft)
	}

	c.mu.Lock()
	c.savingOps--
	if err != nil {
		c.lastMessage = Message{Kind: MessageError, Text: describeFailure(err, MsgSaveFailed)}
		c.mu.Unlock()
		c.logger.ErrorContext(ctx, "save listing failed", "id", draft.ID, "error", err)
		return fmt.Errorf("save listing: %w", err)
	}
	// a buffer selected while the request was in flight stays open
	if c.editing == sent {
		c.editing = nil
	}
	c.lastMessage = Message{Kind: MessageSuccess, Text: MsgSaved}
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "listing saved", "id", draft.ID, "created", draft.IsNew())
	c.refreshAfterMutation(ctx)
	return nil
}

// Delete removes the listing with id once confirm approves. A declined
// confirmation sends nothing and returns ErrNotConfirmed.
func (c *AdminController) Delete(ctx context.Context, id string, confirm Confirmer) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.ValidationField("id", "listing id is required")
	}
	if confirm == nil {
		return ErrNotConfirmed
	}
	ok, err := confirm.Confirm(ctx, fmt.Sprintf("Delete listing %s?", id))
	if err != nil {
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		return ErrNotConfirmed
	}

	c.noteUnprivileged(ctx, "delete listing")

	if err := c.ads.Delete(ctx, id); err != nil {
		c.setMessage(Message{Kind: MessageError, Text: describeFailure(err, MsgDeleteFailed)})
		c.logger.ErrorContext(ctx, "delete listing failed", "id", id, "error", err)
		return fmt.Errorf("delete listing: %w", err)
	}

	c.setMessage(Message{Kind: MessageSuccess, Text: MsgDeleted})
	c.logger.InfoContext(ctx, "listing deleted", "id", id)
	c.refreshAfterMutation(ctx)
	return nil
}

// Cancel discards the edit buffer.
func (c *AdminController) Cancel() {
	c.mu.Lock()
	c.editing = nil
	c.lastMessage = Message{}
	c.mu.Unlock()
}

// LoadSettings fetches the settings record. When the service has none the
// current values are kept.
func (c *AdminController) LoadSettings(ctx context.Context) error {
	s, found, err := c.settings.Get(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "load settings failed; keeping current values", "error", err)
		return fmt.Errorf("load settings: %w", err)
	}
	if !found {
		c.logger.DebugContext(ctx, "no settings returned; keeping current values")
		return nil
	}
	c.mu.Lock()
	c.siteConfig = s
	c.mu.Unlock()
	return nil
}

// UpdateSettingsField sets one settings field locally.
func (c *AdminController) UpdateSettingsField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.siteConfig.SetField(name, value); err != nil {
		return apperrors.ValidationField(name, err.Error())
	}
	return nil
}

// SaveSettings overwrites the remote settings record with the local one.
func (c *AdminController) SaveSettings(ctx context.Context) error {
	c.mu.Lock()
	snapshot := c.siteConfig
	c.savingOps++
	c.lastMessage = Message{}
	c.mu.Unlock()

	c.noteUnprivileged(ctx, "save settings")
	err := c.settings.Save(ctx, snapshot)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.savingOps--
	if err != nil {
		c.lastMessage = Message{Kind: MessageError, Text: describeFailure(err, MsgSettingsSaveFailed)}
		c.logger.ErrorContext(ctx, "save settings failed", "error", err)
		return fmt.Errorf("save settings: %w", err)
	}
	c.lastMessage = Message{Kind: MessageSuccess, Text: MsgSettingsSaved}
	return nil
}

// State returns a snapshot safe to read without further locking.
func (c *AdminController) State() AdminState {
	c.mu.Lock()
	defer c.mu.Unlock()

	listings := make([]model.Listing, len(c.listings))
	for i, l := range c.listings {
		listings[i] = l.Clone()
	}
	var editing *model.Listing
	if c.editing != nil {
		cp := c.editing.Clone()
		editing = &cp
	}
	return AdminState{
		Listings: listings,
		Editing:  editing,
		Settings: c.siteConfig,
		Loading:  c.loadingOps > 0,
		Saving:   c.savingOps > 0,
		Message:  c.lastMessage,
	}
}

func (c *AdminController) bufferLocked() *model.Listing {
	if c.editing == nil {
		draft := model.NewDraft()
		c.editing = &draft
	}
	return c.editing
}

func (c *AdminController) setMessage(m Message) {
	c.mu.Lock()
	c.lastMessage = m
	c.mu.Unlock()
}

// refreshAfterMutation re-fetches the collection; the store is the source of
// truth after any write. A failed refresh only records its own message.
func (c *AdminController) refreshAfterMutation(ctx context.Context) {
	if err := c.ListListings(ctx); err != nil {
		c.logger.WarnContext(ctx, "refresh after mutation failed", "error", err)
	}
}

func (c *AdminController) noteUnprivileged(ctx context.Context, action string) {
	if c.session == nil {
		return
	}
	if s := c.session.Session(); !s.IsAdmin {
		c.logger.WarnContext(ctx, "operator is not flagged admin; sending anyway",
			"action", action,
			"logged_in", s.LoggedIn,
		)
	}
}

// describeFailure picks the operator-facing text for a failed call: the
// remote service's own message when it sent one, a network hint for
// transport failures, otherwise the generic text.
func describeFailure(err error, generic string) string {
	if msg, ok := apperrors.RemoteMessage(err); ok {
		return msg
	}
	if apperrors.IsNetwork(err) {
		return MsgNetwork
	}
	return generic
}
