package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
	"github.com/spf13/cobra"
)

// NewNameComCommand creates the namecom command group.
func NewNameComCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "namecom",
		Aliases: []string{"name.com"},
		Short:   "Work with the Name.com API",
		Long:    "Manage domains, DNS, DNSSEC, URL forwarding and vanity nameservers at Name.com",
	}

	cmd.AddCommand(newNameComHelloCommand())
	cmd.AddCommand(newNameComDomainsCommand())
	cmd.AddCommand(newNameComDNSCommand())
	cmd.AddCommand(newNameComDNSSECCommand())
	cmd.AddCommand(newNameComForwardingCommand())
	cmd.AddCommand(newNameComVanityCommand())

	return cmd
}

func parseRecordID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", constants.ErrInvalidRecordID, value)
	}

	return id, nil
}

func newNameComHelloCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Check connectivity and credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			hello, err := client.Hello(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to reach Name.com: %w", err)
			}

			return render(cmd.OutOrStdout(), hello, func() tableData {
				return tableData{
					header: []string{"Property", "Value"},
					rows: [][]string{
						{"Server", hello.ServerName},
						{"Server Time", hello.ServerTime},
						{"Username", hello.Username},
						{"MOTD", orNA(hello.Motd)},
					},
				}
			})
		},
	}
}

func newNameComDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage domains",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every domain in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			domains, err := client.Domains().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list domains: %w", err)
			}

			return render(cmd.OutOrStdout(), domains, func() tableData {
				data := tableData{header: []string{"Domain", "Expires", "Autorenew", "Locked", "Privacy"}}
				for _, domain := range domains {
					data.rows = append(data.rows, []string{
						domain.DomainName, orNA(domain.ExpireDate),
						yesNo(domain.AutorenewEnabled), yesNo(domain.Locked), yesNo(domain.PrivacyEnabled),
					})
				}

				return data
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get DOMAIN",
		Short: "Show one domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			domain, err := client.Domains().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get domain: %w", err)
			}

			return render(cmd.OutOrStdout(), domain, func() tableData {
				return domainDetails(domain)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check DOMAIN...",
		Short: "Check whether domains can be registered",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			results, err := client.Domains().CheckAvailability(cmd.Context(), args)
			if err != nil {
				return fmt.Errorf("failed to check availability: %w", err)
			}

			return render(cmd.OutOrStdout(), results, func() tableData {
				data := tableData{header: []string{"Domain", "Purchasable", "Premium", "Price", "Renewal"}}
				for _, result := range results {
					data.rows = append(data.rows, []string{
						result.DomainName, yesNo(result.Purchasable), yesNo(result.Premium),
						formatPrice(result.PurchasePrice), formatPrice(result.RenewalPrice),
					})
				}

				return data
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "auth-code DOMAIN",
		Short: "Show the transfer authorization code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			code, err := client.Domains().GetAuthCode(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get auth code: %w", err)
			}

			return render(cmd.OutOrStdout(), map[string]string{"authCode": code}, func() tableData {
				return tableData{header: []string{"Domain", "Auth Code"}, rows: [][]string{{args[0], code}}}
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

			client, err := newNameComClient()
			if err != nil {
				return err
			}

			domain, err := client.Domains().SetNameservers(cmd.Context(), args[0], args[1:])
			if err != nil {
				return fmt.Errorf("failed to set nameservers: %w", err)
			}

			return render(cmd.OutOrStdout(), domain, func() tableData {
				return domainDetails(domain)
			})
		},
	})

	return cmd
}

func domainDetails(domain *namecom.Domain) tableData {
	renewal := constants.NotAvailable
	if domain.RenewalPrice != nil {
		renewal = formatPrice(*domain.RenewalPrice)
	}

	return tableData{
		header: []string{"Property", "Value"},
		rows: [][]string{
			{"Domain", domain.DomainName},
			{"Created", orNA(domain.CreateDate)},
			{"Expires", orNA(domain.ExpireDate)},
			{"Autorenew", yesNo(domain.AutorenewEnabled)},
			{"Locked", yesNo(domain.Locked)},
			{"Privacy", yesNo(domain.PrivacyEnabled)},
			{"Nameservers", orNA(strings.Join(domain.Nameservers, ", "))},
			{"Renewal Price", renewal},
		},
	}
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64) //nolint:mnd // cents
}

func nameComRecordsTable(records []namecom.DNSRecord) tableData {
	data := tableData{header: []string{"ID", "Host", "Type", "Answer", "TTL", "Priority"}}
	for _, record := range records {
		priority := ""
		if record.Priority != 0 {
			priority = itoa(record.Priority)
		}

		data.rows = append(data.rows, []string{
			itoa(record.ID), orNA(record.Host), record.Type, record.Answer, itoa(record.TTL), priority,
		})
	}

	return data
}

func newNameComDNSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list DOMAIN",
		Short: "List the records of a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			records, err := client.DNS().List(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}

			return render(cmd.OutOrStdout(), records, func() tableData {
				return nameComRecordsTable(records)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get DOMAIN ID",
		Short: "Show one record",
		Args:  cobra.ExactArgs(2), //nolint:mnd // domain and id
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[1])
			if err != nil {
				return err
			}

			client, err := newNameComClient()
			if err != nil {
				return err
			}

			record, err := client.DNS().Get(cmd.Context(), args[0], id)
			if err != nil {
				return fmt.Errorf("failed to get record: %w", err)
			}

			return render(cmd.OutOrStdout(), record, func() tableData {
				return nameComRecordsTable([]namecom.DNSRecord{*record})
			})
		},
	})

	cmd.AddCommand(newNameComDNSCreateCommand())

	cmd.AddCommand(&cobra.Command{
		Use:   "delete DOMAIN ID",
		Short: "Delete one record",
		Args:  cobra.ExactArgs(2), //nolint:mnd // domain and id
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[1])
			if err != nil {
				return err
			}

			client, err := newNameComClient()
			if err != nil {
				return err
			}

			err = client.DNS().Delete(cmd.Context(), args[0], id)
			if err != nil {
				return fmt.Errorf("failed to delete record: %w", err)
			}

			return renderMessage(cmd.OutOrStdout(), fmt.Sprintf("Deleted record %d of %s", id, args[0]))
		},
	})

	return cmd
}

func newNameComDNSCreateCommand() *cobra.Command {
	request := &namecom.DNSRecordRequest{}

	cmd := &cobra.Command{
		Use:   "create DOMAIN",
		Short: "Create a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			record, err := client.DNS().Create(cmd.Context(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to create record: %w", err)
			}

			return render(cmd.OutOrStdout(), record, func() tableData {
				return nameComRecordsTable([]namecom.DNSRecord{*record})
			})
		},
	}

	cmd.Flags().StringVar(&request.Host, "host", "", "host label, empty for the apex")
	cmd.Flags().StringVar(&request.Type, "type", "A", "record type")
	cmd.Flags().StringVar(&request.Answer, "answer", "", "record answer")
	cmd.Flags().IntVar(&request.TTL, "ttl", constants.DefaultRecordTTL, "time to live in seconds")
	cmd.Flags().IntVar(&request.Priority, "priority", 0, "priority for MX and SRV records")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func newNameComDNSSECCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dnssec",
		Short: "Manage DNSSEC records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list DOMAIN",
		Short: "List the DS records of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			records, err := client.DNSSEC().List(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list DNSSEC records: %w", err)
			}

			return render(cmd.OutOrStdout(), records, func() tableData {
				data := tableData{header: []string{"Key Tag", "Algorithm", "Digest Type", "Digest"}}
				for _, record := range records {
					data.rows = append(data.rows, []string{
						itoa(record.KeyTag), itoa(record.Algorithm), itoa(record.DigestType), record.Digest,
					})
				}

				return data
			})
		},
	})

	return cmd
}

func newNameComForwardingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "forwarding",
		Aliases: []string{"forwards"},
		Short:   "Manage URL forwarding",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list DOMAIN",
		Short: "List the URL forwardings of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			forwardings, err := client.URLForwarding().List(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list URL forwarding: %w", err)
			}

			return render(cmd.OutOrStdout(), forwardings, func() tableData {
				data := tableData{header: []string{"Host", "Forwards To", "Type"}}
				for _, forwarding := range forwardings {
					data.rows = append(data.rows, []string{forwarding.Host, forwarding.ForwardsTo, forwarding.Type})
				}

				return data
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete DOMAIN HOST",
		Short: "Delete the URL forwarding of a host",
		Args:  cobra.ExactArgs(2), //nolint:mnd // domain and host
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			err = client.URLForwarding().Delete(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete URL forwarding: %w", err)
			}

			return renderMessage(cmd.OutOrStdout(), fmt.Sprintf("Deleted URL forwarding %s", args[1]))
		},
	})

	return cmd
}

func newNameComVanityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vanity-ns",
		Short: "Manage vanity nameservers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list DOMAIN",
		Short: "List the vanity nameservers of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newNameComClient()
			if err != nil {
				return err
			}

			nameservers, err := client.VanityNameservers().List(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list vanity nameservers: %w", err)
			}

			return render(cmd.OutOrStdout(), nameservers, func() tableData {
				data := tableData{header: []string{"Hostname", "IPs"}}
				for _, nameserver := range nameservers {
					data.rows = append(data.rows, []string{nameserver.Hostname, strings.Join(nameserver.IPs, ", ")})
				}

				return data
			})
		},
	})

	return cmd
}
