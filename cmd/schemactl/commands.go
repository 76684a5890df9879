package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"circles-of-care-site/internal/content"
	"circles-of-care-site/internal/domain"
	"circles-of-care-site/internal/schema"

	"github.com/spf13/cobra"
)

type options struct {
	contentPath string
	siteURL     string
	html        bool
	compact     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "schemactl",
		Short:         "Print the JSON-LD records generated from the site catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.contentPath, "content", "c", "", "Catalog YAML file (default: embedded catalog)")
	root.PersistentFlags().StringVar(&opts.siteURL, "site-url", "", "Override the catalog site URL")
	root.PersistentFlags().BoolVar(&opts.html, "html", false, "Wrap each record in a <script type=\"application/ld+json\"> block")
	root.PersistentFlags().BoolVar(&opts.compact, "compact", false, "Print records without indentation")

	root.AddCommand(
		&cobra.Command{
			Use:   "business",
			Short: "LocalBusiness record",
			Args:  cobra.NoArgs,
			RunE: opts.run(func(site *domain.Site, _ []string) ([]schema.Record, error) {
				return []schema.Record{schema.LocalBusiness(site.Identity)}, nil
			}),
		},
		&cobra.Command{
			Use:   "organization",
			Short: "Organization record",
			Args:  cobra.NoArgs,
			RunE: opts.run(func(site *domain.Site, _ []string) ([]schema.Record, error) {
				return []schema.Record{schema.Organization(site.Identity)}, nil
			}),
		},
		&cobra.Command{
			Use:   "service <id>",
			Short: "Service record for a catalog service",
			Args:  cobra.ExactArgs(1),
			RunE: opts.run(func(site *domain.Site, args []string) ([]schema.Record, error) {
				svc, ok := site.ServiceByID(args[0])
				if !ok {
					return nil, fmt.Errorf("unknown service %q (known: %v)", args[0], site.ServiceIDs())
				}
				return []schema.Record{schema.ServiceFromCatalog(site.Identity, svc)}, nil
			}),
		},
		&cobra.Command{
			Use:   "location <slug>",
			Short: "LocalBusiness record for a location page",
			Args:  cobra.ExactArgs(1),
			RunE: opts.run(func(site *domain.Site, args []string) ([]schema.Record, error) {
				loc, ok := site.LocationBySlug(args[0])
				if !ok {
					return nil, fmt.Errorf("unknown location %q", args[0])
				}
				return []schema.Record{schema.LocationBusiness(site.Identity, loc)}, nil
			}),
		},
		&cobra.Command{
			Use:   "faq",
			Short: "FAQPage record",
			Args:  cobra.NoArgs,
			RunE: opts.run(func(site *domain.Site, _ []string) ([]schema.Record, error) {
				return []schema.Record{schema.FAQPage(site.FAQs)}, nil
			}),
		},
		&cobra.Command{
			Use:   "breadcrumbs <path>",
			Short: "BreadcrumbList record for a page path",
			Args:  cobra.ExactArgs(1),
			RunE: opts.run(func(site *domain.Site, args []string) ([]schema.Record, error) {
				items, ok := site.Trail(args[0])
				if !ok {
					return nil, fmt.Errorf("no page at %q", args[0])
				}
				return []schema.Record{schema.Breadcrumbs(site.Identity, items)}, nil
			}),
		},
		&cobra.Command{
			Use:   "page <path>",
			Short: "Every record embedded in a page",
			Args:  cobra.ExactArgs(1),
			RunE:  opts.run(pageRecords),
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Load and validate the catalog",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				site, err := opts.load()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%d services, %d locations, %d faqs)\n",
					site.Identity.URL, len(site.Services), len(site.Locations), len(site.FAQs))
				return nil
			},
		},
	)

	return root
}

type recordsFunc func(site *domain.Site, args []string) ([]schema.Record, error)

func (o *options) run(fn recordsFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		site, err := o.load()
		if err != nil {
			return err
		}
		records, err := fn(site, args)
		if err != nil {
			return err
		}
		return o.write(cmd.OutOrStdout(), records)
	}
}

func (o *options) load() (*domain.Site, error) {
	var opts []content.Option
	if o.siteURL != "" {
		opts = append(opts, content.WithSiteURL(o.siteURL))
	}
	if o.contentPath != "" {
		return content.LoadFile(o.contentPath, opts...)
	}
	return content.Load(opts...)
}

func (o *options) write(w io.Writer, records []schema.Record) error {
	if o.html {
		block, err := schema.JSONLD(records...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, string(block))
		return err
	}

	for _, rec := range records {
		data, err := schema.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode %s: %w", rec.SchemaType(), err)
		}
		if !o.compact {
			var buf bytes.Buffer
			if err := json.Indent(&buf, data, "", "  "); err != nil {
				return err
			}
			data = buf.Bytes()
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// pageRecords mirrors what the web handlers embed for path.
func pageRecords(site *domain.Site, args []string) ([]schema.Record, error) {
	path := args[0]
	items, ok := site.Trail(path)
	if !ok {
		return nil, fmt.Errorf("no page at %q", path)
	}

	records := []schema.Record{
		schema.LocalBusiness(site.Identity),
		schema.Organization(site.Identity),
	}

	switch first, rest := splitPath(path); {
	case first == site.Identity.ServicesPath && rest != "":
		svc, _ := site.ServiceByID(rest)
		records = append(records, schema.ServiceFromCatalog(site.Identity, svc))
	case first == "locations" && rest != "":
		loc, _ := site.LocationBySlug(rest)
		records = append(records, schema.LocationBusiness(site.Identity, loc))
	case first == "faq":
		records = append(records, schema.FAQPage(site.FAQs))
	}

	if len(items) > 0 {
		records = append(records, schema.Breadcrumbs(site.Identity, items))
	}
	return records, nil
}

// splitPath returns the first segment of a page path and the remainder.
func splitPath(path string) (string, string) {
	first, rest, _ := strings.Cut(strings.Trim(path, "/"), "/")
	return first, rest
}
