package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Muhamedyehya/aqar-admin/internal/bootstrap"
	"github.com/Muhamedyehya/aqar-admin/internal/domain/model"
	"github.com/Muhamedyehya/aqar-admin/internal/service"
)

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errors.New("value cannot be empty")
	}
	*s = append(*s, v)
	return nil
}

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, n := range *l {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("invalid index %q", v)
	}
	*l = append(*l, n)
	return nil
}

type adsListOptions struct {
	JSON bool
}

func parseAdsListFlags(args []string) (adsListOptions, error) {
	fs := flag.NewFlagSet("ads-list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts adsListOptions
	fs.BoolVar(&opts.JSON, "json", false, "Print listings as JSON")
	if err := fs.Parse(args); err != nil {
		return adsListOptions{}, err
	}
	return opts, nil
}

func runAdsList(cmdCtx *commandContext, args []string) error {
	opts, err := parseAdsListFlags(args)
	if err != nil {
		return err
	}

	return withConsole(cmdCtx, func(c *bootstrap.Console) error {
		if err := c.Admin.ListListings(cmdCtx.Ctx); err != nil {
			return err
		}
		listings := c.Admin.State().Listings
		if opts.JSON {
			enc := json.NewEncoder(cmdCtx.Out)
			enc.SetIndent("", "  ")
			return enc.Encode(listings)
		}
		return printListings(cmdCtx, listings)
	})
}

func printListings(cmdCtx *commandContext, listings []model.Listing) error {
	if len(listings) == 0 {
		return writeln(cmdCtx.Out, "No listings")
	}
	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "ID\tTITLE\tPRICE\tLOCATION\tIMAGES"); err != nil {
		return fmt.Errorf("write listings header row: %w", err)
	}
	for _, l := range listings {
		if err := writef(tw, "%s\t%s\t%s\t%s\t%d\n",
			l.ID, dash(l.Title), dash(l.Price.String()), dash(l.Location), len(l.Images)); err != nil {
			return fmt.Errorf("write listing row %q: %w", l.ID, err)
		}
	}
	return tw.Flush()
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

type adSaveOptions struct {
	ID      string
	Fields  map[string]string
	Images  stringList
	Uploads stringList
	Remove  intList
}

func parseAdSaveFlags(args []string) (adSaveOptions, error) {
	fs := flag.NewFlagSet("ad-save", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts adSaveOptions
	fs.StringVar(&opts.ID, "id", "", "Listing ID to update; omit to create")
	values := make(map[string]*string, len(model.ListingFields))
	for _, name := range model.ListingFields {
		values[name] = fs.String(name, "", "Listing "+name)
	}
	fs.Var(&opts.Images, "image", "Image URL to attach (repeatable)")
	fs.Var(&opts.Uploads, "upload", "Local file or URL to upload and attach (repeatable)")
	fs.Var(&opts.Remove, "remove-image", "Image position to remove, 0-based (repeatable)")

	if err := fs.Parse(args); err != nil {
		return adSaveOptions{}, err
	}

	// only explicitly passed fields overwrite the buffer
	opts.Fields = make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		if v, ok := values[f.Name]; ok {
			opts.Fields[f.Name] = *v
		}
	})
	opts.ID = strings.TrimSpace(opts.ID)
	return opts, nil
}

func runAdSave(cmdCtx *commandContext, args []string) error {
	opts, err := parseAdSaveFlags(args)
	if err != nil {
		return err
	}

	return withConsole(cmdCtx, func(c *bootstrap.Console) error {
		if err := prepareDraft(cmdCtx, c, opts); err != nil {
			return err
		}
		saveErr := c.Admin.Save(cmdCtx.Ctx)
		if err := printMessage(cmdCtx, c.Admin.State().Message); err != nil {
			return err
		}
		return saveErr
	})
}

func prepareDraft(cmdCtx *commandContext, c *bootstrap.Console, opts adSaveOptions) error {
	admin := c.Admin
	if opts.ID != "" {
		if err := admin.ListListings(cmdCtx.Ctx); err != nil {
			return err
		}
		if err := admin.SelectByID(opts.ID); err != nil {
			return err
		}
	} else {
		admin.SelectForEdit(nil)
	}

	// highest index first so earlier removals don't shift later ones
	remove := append(intList(nil), opts.Remove...)
	sort.Sort(sort.Reverse(sort.IntSlice(remove)))
	for _, idx := range remove {
		admin.RemoveImage(idx)
	}

	for _, name := range model.ListingFields {
		if v, ok := opts.Fields[name]; ok {
			if err := admin.UpdateField(name, v); err != nil {
				return err
			}
		}
	}
	for _, url := range opts.Images {
		admin.AttachImage(url)
	}

	if len(opts.Uploads) > 0 {
		return uploadImages(cmdCtx, c, opts.Uploads)
	}
	return nil
}

// uploadImages runs the uploader and attaches each completed upload as it arrives.
func uploadImages(cmdCtx *commandContext, c *bootstrap.Console, sources []string) error {
	if c.Uploader == nil {
		return errors.New("image uploads are not configured (set CLOUDINARY_CLOUD_NAME and CLOUDINARY_UPLOAD_PRESET)")
	}

	msgs := make(chan model.UploadMessage)
	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Uploader.Upload(cmdCtx.Ctx, sources, msgs)
		close(msgs)
	}()

	attached := c.Admin.ConsumeUploads(cmdCtx.Ctx, msgs)
	if err := <-errCh; err != nil {
		return fmt.Errorf("upload images: %w", err)
	}
	if attached < len(sources) {
		cmdCtx.Logger.Warn("some uploads failed", "attached", attached, "requested", len(sources))
	}
	return writef(cmdCtx.Out, "Uploaded %d of %d image(s)\n", attached, len(sources))
}

type adDeleteOptions struct {
	ID  string
	Yes bool
}

func parseAdDeleteFlags(args []string) (adDeleteOptions, error) {
	fs := flag.NewFlagSet("ad-delete", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts adDeleteOptions
	fs.StringVar(&opts.ID, "id", "", "Listing ID to delete (required)")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return adDeleteOptions{}, err
	}

	opts.ID = strings.TrimSpace(opts.ID)
	if opts.ID == "" {
		return adDeleteOptions{}, errors.New("--id is required")
	}
	return opts, nil
}

func runAdDelete(cmdCtx *commandContext, args []string) error {
	opts, err := parseAdDeleteFlags(args)
	if err != nil {
		return err
	}

	return withConsole(cmdCtx, func(c *bootstrap.Console) error {
		deleteErr := c.Admin.Delete(cmdCtx.Ctx, opts.ID, confirmer(cmdCtx, opts.Yes))
		if errors.Is(deleteErr, service.ErrNotConfirmed) {
			if err := writeln(cmdCtx.Out, "Aborted"); err != nil {
				return err
			}
			return errors.New("aborted by user")
		}
		if err := printMessage(cmdCtx, c.Admin.State().Message); err != nil {
			return err
		}
		return deleteErr
	})
}

func printMessage(cmdCtx *commandContext, msg service.Message) error {
	switch msg.Kind {
	case service.MessageSuccess:
		return writeln(cmdCtx.Out, msg.Text)
	case service.MessageError:
		return writef(cmdCtx.Out, "Error: %s\n", msg.Text)
	default:
		return nil
	}
}
