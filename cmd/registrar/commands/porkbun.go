package commands

import (
	"fmt"
	"net/netip"
	"sort"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/pkg/porkbun"
	"github.com/spf13/cobra"
)

// NewPorkbunCommand creates the porkbun command group.
func NewPorkbunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "porkbun",
		Short: "Work with the Porkbun API",
		Long:  "Manage domains, DNS, DNSSEC, URL forwards, glue records and certificates at Porkbun",
	}

	cmd.AddCommand(newPorkbunPingCommand())
	cmd.AddCommand(newPorkbunPricingCommand())
	cmd.AddCommand(newPorkbunDomainsCommand())
	cmd.AddCommand(newPorkbunDNSCommand())
	cmd.AddCommand(newPorkbunDNSSECCommand())
	cmd.AddCommand(newPorkbunForwardsCommand())
	cmd.AddCommand(newPorkbunGlueCommand())
	cmd.AddCommand(newPorkbunSSLCommand())

	return cmd
}

func parseRecordID64(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", constants.ErrInvalidRecordID, value)
	}

	return id, nil
}

func newPorkbunPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check credentials and show your public IP",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			ping, err := client.Ping(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to ping Porkbun: %w", err)
			}

			return render(cmd.OutOrStdout(), ping, func() tableData {
				return tableData{
					header: []string{"Status", "Your IP"},
					rows:   [][]string{{ping.Status, ping.YourIP}},
				}
			})
		},
	}
}

func newPorkbunPricingCommand() *cobra.Command {
	var tlds []string

	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Show registration prices per TLD",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunPublicClient()
			if err != nil {
				return err
			}

			pricing, err := client.Pricing(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get pricing: %w", err)
			}

			if len(tlds) > 0 {
				selected := make(map[string]porkbun.TLDPricing, len(tlds))
				for _, tld := range tlds {
					tld = strings.TrimPrefix(strings.ToLower(tld), ".")
					if price, ok := pricing[tld]; ok {
						selected[tld] = price
					}
				}

				pricing = selected
			}

			return render(cmd.OutOrStdout(), pricing, func() tableData {
				names := make([]string, 0, len(pricing))
				for tld := range pricing {
					names = append(names, tld)
				}

				sort.Strings(names)

				data := tableData{header: []string{"TLD", "Registration", "Renewal", "Transfer"}}
				for _, tld := range names {
					price := pricing[tld]
					data.rows = append(data.rows, []string{tld, price.Registration, price.Renewal, price.Transfer})
				}

				return data
			})
		},
	}

	cmd.Flags().StringSliceVar(&tlds, "tld", nil, "only show these TLDs")

	return cmd
}

func newPorkbunDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage domains",
	}

	cmd.AddCommand(newPorkbunDomainsListCommand())

	cmd.AddCommand(&cobra.Command{
		Use:   "check DOMAIN",
		Short: "Check whether a domain can be registered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			check, err := client.Domains().Check(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to check domain: %w", err)
			}

			return render(cmd.OutOrStdout(), check, func() tableData {
				response := check.Response

				return tableData{
					header: []string{"Property", "Value"},
					rows: [][]string{
						{"Domain", args[0]},
						{"Available", yesNo(bool(response.Avail))},
						{"Price", orNA(response.Price)},
						{"Regular Price", orNA(response.RegularPrice)},
						{"Premium", yesNo(bool(response.Premium))},
						{"Renewal", orNA(response.Additional.Renewal.Price)},
						{"Checks", orNA(check.Limits.NaturalLanguage)},
					},
				}
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "ns DOMAIN",
		Short: "Show the nameservers of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			nameservers, err := client.Domains().GetNameservers(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get nameservers: %w", err)
			}

			return render(cmd.OutOrStdout(), nameservers, func() tableData {
				data := tableData{header: []string{"Nameserver"}}
				for _, nameserver := range nameservers {
					data.rows = append(data.rows, []string{nameserver})
				}

				return data
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-ns DOMAIN NAMESERVER...",
		Short: "Replace the nameservers of a domain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 { //nolint:mnd // domain plus at least one nameserver
				return constants.ErrNoNameservers
			}

			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			err = client.Domains().UpdateNameservers(cmd.Context(), args[0], args[1:])
			if err != nil {
				return fmt.Errorf("failed to set nameservers: %w", err)
			}

			return renderMessage(cmd.OutOrStdout(), fmt.Sprintf("Updated nameservers of %s", args[0]))
		},
	})

	return cmd
}

func newPorkbunDomainsListCommand() *cobra.Command {
	var (
		labels bool
		stream bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every domain in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			options := &porkbun.ListOptions{IncludeLabels: labels}

			var domains []porkbun.DomainInfo

			if stream {
				for result := range client.Domains().StreamAll(cmd.Context(), options) {
					if result.Err != nil {
						return fmt.Errorf("failed to list domains: %w", result.Err)
					}

					domains = append(domains, result.Items...)
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "fetched %d domains\n", len(domains))
				}
			} else {
				domains, err = client.Domains().ListAll(cmd.Context(), options)
				if err != nil {
					return fmt.Errorf("failed to list domains: %w", err)
				}
			}

			return render(cmd.OutOrStdout(), domains, func() tableData {
				data := tableData{header: []string{"Domain", "Status", "Expires", "Auto Renew", "Locked", "Labels"}}
				for _, domain := range domains {
					titles := make([]string, 0, len(domain.Labels))
					for _, label := range domain.Labels {
						titles = append(titles, label.Title)
					}

					data.rows = append(data.rows, []string{
						domain.Domain, orNA(domain.Status), orNA(domain.ExpireDate),
						yesNo(bool(domain.AutoRenew)), yesNo(bool(domain.SecurityLock)), strings.Join(titles, ", "),
					})
				}

				return data
			})
		},
	}

	cmd.Flags().BoolVar(&labels, "labels", false, "include domain labels")
	cmd.Flags().BoolVar(&stream, "stream", false, "report progress after every batch")

	return cmd
}

func porkbunRecordsTable(records []porkbun.DNSRecord) tableData {
	data := tableData{header: []string{"ID", "Name", "Type", "Content", "TTL", "Priority", "Notes"}}
	for _, record := range records {
		data.rows = append(data.rows, []string{
			strconv.FormatInt(record.ID, 10), record.Name, record.Type, record.Content, record.TTL, record.Prio, record.Notes,
		})
	}

	return data
}

func newPorkbunDNSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records",
	}

	cmd.AddCommand(newPorkbunDNSListCommand())
	cmd.AddCommand(newPorkbunDNSCreateCommand())
	cmd.AddCommand(newPorkbunDNSDeleteCommand())

	return cmd
}

func newPorkbunDNSListCommand() *cobra.Command {
	var recordType, subdomain string

	cmd := &cobra.Command{
		Use:   "list DOMAIN [ID]",
		Short: "List the records of a zone",
		Args:  cobra.RangeArgs(1, 2), //nolint:mnd // domain and optional id
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			var records []porkbun.DNSRecord

			switch {
			case len(args) == 2: //nolint:mnd // id given
				id, err := parseRecordID64(args[1])
				if err != nil {
					return err
				}

				record, err := client.DNS().RetrieveByID(cmd.Context(), args[0], id)
				if err != nil {
					return fmt.Errorf("failed to retrieve record: %w", err)
				}

				records = []porkbun.DNSRecord{*record}
			case recordType != "":
				records, err = client.DNS().RetrieveByNameType(cmd.Context(), args[0], recordType, subdomain)
			default:
				records, err = client.DNS().Retrieve(cmd.Context(), args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to retrieve records: %w", err)
			}

			return render(cmd.OutOrStdout(), records, func() tableData {
				return porkbunRecordsTable(records)
			})
		},
	}

	cmd.Flags().StringVar(&recordType, "type", "", "only records of this type")
	cmd.Flags().StringVar(&subdomain, "subdomain", "", "with --type, only records of this subdomain")

	return cmd
}

func newPorkbunDNSCreateCommand() *cobra.Command {
	request := &porkbun.DNSRecordCreateRequest{}

	cmd := &cobra.Command{
		Use:   "create DOMAIN",
		Short: "Create a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			id, err := client.DNS().Create(cmd.Context(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to create record: %w", err)
			}

			return render(cmd.OutOrStdout(), map[string]int64{"id": id}, func() tableData {
				return tableData{header: []string{"ID"}, rows: [][]string{{strconv.FormatInt(id, 10)}}}
			})
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "subdomain, empty for the apex")
	cmd.Flags().StringVar(&request.Type, "type", "A", "record type")
	cmd.Flags().StringVar(&request.Content, "content", "", "record content")
	cmd.Flags().StringVar(&request.TTL, "ttl", "", "time to live in seconds")
	cmd.Flags().StringVar(&request.Prio, "prio", "", "priority for MX and SRV records")
	cmd.Flags().StringVar(&request.Notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newPorkbunDNSDeleteCommand() *cobra.Command {
	var recordType, subdomain string

	cmd := &cobra.Command{
		Use:   "delete DOMAIN [ID]",
		Short: "Delete a record by id, or every record of a type with --type",
		Args:  cobra.RangeArgs(1, 2), //nolint:mnd // domain and optional id
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && recordType == "" {
				return fmt.Errorf("%w: pass an ID or --type", constants.ErrInvalidRecordID)
			}

			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				err = client.DNS().DeleteByNameType(cmd.Context(), args[0], recordType, subdomain)
				if err != nil {
					return fmt.Errorf("failed to delete records: %w", err)
				}

				return renderMessage(cmd.OutOrStdout(), fmt.Sprintf("Deleted %s records of %s", recordType, args[0]))
			}

			id, err := parseRecordID64(args[1])
			if err != nil {
				return err
			}

			err = client.DNS().Delete(cmd.Context(), args[0], id)
			if err != nil {
				return fmt.Errorf("failed to delete record: %w", err)
			}

			return renderMessage(cmd.OutOrStdout(), fmt.Sprintf("Deleted record %d of %s", id, args[0]))
		},
	}

	cmd.Flags().StringVar(&recordType, "type", "", "delete every record of this type")
	cmd.Flags().StringVar(&subdomain, "subdomain", "", "with --type, only records of this subdomain")

	return cmd
}

func newPorkbunDNSSECCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dnssec",
		Short: "Manage DNSSEC records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list DOMAIN",
		Short: "List the DS records of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			records, err := client.DNSSEC().List(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list DNSSEC records: %w", err)
			}

			return render(cmd.OutOrStdout(), records, func() tableData {
				tags := make([]string, 0, len(records))
				for tag := range records {
					tags = append(tags, tag)
				}

				sort.Strings(tags)

				data := tableData{header: []string{"Key Tag", "Algorithm", "Digest Type", "Digest"}}
				for _, tag := range tags {
					record := records[tag]
					data.rows = append(data.rows, []string{tag, record.Alg, record.DigestType, record.Digest})
				}

				return data
			})
		},
	})

	return cmd
}

func newPorkbunForwardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "forwards",
		Aliases: []string{"forwarding"},
		Short:   "Manage URL forwards",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list DOMAIN",
		Short: "List the URL forwards of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			forwards, err := client.Domains().GetURLForwarding(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list URL forwards: %w", err)
			}

			return render(cmd.OutOrStdout(), forwards, func() tableData {
				data := tableData{header: []string{"ID", "Subdomain", "Location", "Type", "Include Path", "Wildcard"}}
				for _, forward := range forwards {
					data.rows = append(data.rows, []string{
						strconv.FormatInt(forward.ID, 10), orNA(forward.Subdomain), forward.Location,
						forward.Type, forward.IncludePath, forward.Wildcard,
					})
				}

				return data
			})
		},
	})

	return cmd
}

func joinAddrs(addrs []netip.Addr) string {
	texts := make([]string, len(addrs))
	for i, addr := range addrs {
		texts[i] = addr.String()
	}

	return strings.Join(texts, ", ")
}

func newPorkbunGlueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glue",
		Short: "Manage glue records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list DOMAIN",
		Short: "List the glue records of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			records, err := client.Domains().GetGlue(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list glue records: %w", err)
			}

			return render(cmd.OutOrStdout(), records, func() tableData {
				data := tableData{header: []string{"Host", "IPv4", "IPv6"}}
				for _, record := range records {
					data.rows = append(data.rows, []string{record.Host, joinAddrs(record.IPv4), joinAddrs(record.IPv6)})
				}

				return data
			})
		},
	})

	return cmd
}

func newPorkbunSSLCommand() *cobra.Command {
	var showPrivateKey bool

	cmd := &cobra.Command{
		Use:   "ssl DOMAIN",
		Short: "Retrieve the free certificate bundle of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPorkbunClient()
			if err != nil {
				return err
			}

			bundle, err := client.SSL().Retrieve(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve certificate bundle: %w", err)
			}

			shown := *bundle
			if !showPrivateKey {
				shown.PrivateKey = constants.MaskedSecret
			}

			return render(cmd.OutOrStdout(), shown, func() tableData {
				return tableData{
					header: []string{"Part", "PEM"},
					rows: [][]string{
						{"Certificate Chain", shown.CertificateChain},
						{"Public Key", shown.PublicKey},
						{"Private Key", shown.PrivateKey},
					},
				}
			})
		},
	}

	cmd.Flags().BoolVar(&showPrivateKey, "show-private-key", false, "print the private key instead of masking it")

	return cmd
}
