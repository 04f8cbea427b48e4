package cli

import (
	"github.com/spf13/cobra"

	"github.com/Lzww0608/idgen"
)

func (a *app) uuidCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate Universally Unique Identifiers",
		Long: "Generates a new Universally Unique Identifier.\n\n" +
			"  v1, v6  time-based, optional --timestamp and --node-id\n" +
			"  v3, v5  name-based, --namespace and --name required\n" +
			"  v4      random\n" +
			"  v7      Unix time ordered, optional --timestamp\n" +
			"  v8      custom, --data required",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := a.uuidRequest(cmd)
			if err != nil {
				return err
			}
			return a.generate(cmd, req)
		},
	}

	f := cmd.Flags()
	f.StringP("version", "v", "4", "UUID version: 1, 3, 4, 5, 6, 7 or 8")
	f.String("timestamp", "", "fixed timestamp for v1, v6, v7: seconds followed by 9 digits of nanoseconds")
	f.String("namespace", "", "name space for v3 and v5: dns, oid, url or x500")
	f.String("name", "", "name for v3 and v5")
	f.String("node-id", "", "node id for v1 and v6 as a MAC address, e.g. 01:23:45:67:89:ab")
	f.String("data", "", "payload for v8: up to 32 hex digits, right padded with zeros")
	return cmd
}

// uuidRequest collects the uuid flags into a request. Flags that were not
// given stay nil; cross-field rules are left to idgen.Validate.
func (a *app) uuidRequest(cmd *cobra.Command) (idgen.UUIDRequest, error) {
	var req idgen.UUIDRequest
	f := cmd.Flags()

	req.Version = idgen.Version(a.cfg.UUID.Version)
	if f.Changed("version") {
		s, _ := f.GetString("version")
		v, err := idgen.ParseVersion(s)
		if err != nil {
			return req, err
		}
		req.Version = v
	}

	if f.Changed("timestamp") {
		s, _ := f.GetString("timestamp")
		ts, err := idgen.ParseTimestamp(s)
		if err != nil {
			return req, err
		}
		req.Timestamp = &ts
	}
	if f.Changed("namespace") {
		s, _ := f.GetString("namespace")
		ns, err := idgen.ParseNamespace(s)
		if err != nil {
			return req, err
		}
		req.Namespace = &ns
	}
	if f.Changed("name") {
		s, _ := f.GetString("name")
		req.Name = &s
	}
	if f.Changed("node-id") {
		s, _ := f.GetString("node-id")
		node, err := idgen.ParseNodeID(s)
		if err != nil {
			return req, err
		}
		req.NodeID = &node
	}
	if f.Changed("data") {
		s, _ := f.GetString("data")
		data, err := idgen.ParseHexPayload(s)
		if err != nil {
			return req, err
		}
		req.Data = &data
	}
	return req, nil
}

func (a *app) ulidCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ulid",
		Short: "Generate Universally Unique Lexicographically Sortable Identifiers",
		Long:  "Generates a new Universally Unique Lexicographically Sortable Identifier.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req idgen.ULIDRequest
			if cmd.Flags().Changed("timestamp") {
				s, _ := cmd.Flags().GetString("timestamp")
				ms, err := idgen.ParseUnixMillis(s)
				if err != nil {
					return err
				}
				req.Timestamp = &ms
			}
			return a.generate(cmd, req)
		},
	}
	cmd.Flags().String("timestamp", "", "fixed timestamp in milliseconds since the Unix epoch")
	return cmd
}

func (a *app) objectIDCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "oid",
		Aliases: []string{"objectid"},
		Short:   "Generate MongoDB/BSON ObjectIds",
		Long:    "Generates a new MongoDB/BSON ObjectId.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req idgen.ObjectIDRequest
			if cmd.Flags().Changed("timestamp") {
				s, _ := cmd.Flags().GetString("timestamp")
				sec, err := idgen.ParseUnixSeconds(s)
				if err != nil {
					return err
				}
				req.Timestamp = &sec
			}
			return a.generate(cmd, req)
		},
	}
	cmd.Flags().String("timestamp", "", "fixed timestamp in seconds since the Unix epoch")
	return cmd
}
