package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/status-im/status-names/logutils"
	"github.com/status-im/status-names/params"
)

const (
	ConfigFlag     = "config"
	DebugLevelFlag = "debug"
	PubKeyFlag     = "pubkey"
	PrefixFlag     = "prefix"
	MethodFlag     = "method"
	KeyFlag        = "key"
	MessageFlag    = "message"
	NameFlag       = "name"
	AddressFlag    = "address"
	SenderFlag     = "sender"
	SaltFlag       = "salt"
	ChainIDFlag    = "chain-id"
	ContractFlag   = "contract"
)

var configFlag = &cli.StringFlag{
	Name:     ConfigFlag,
	Aliases:  []string{"c"},
	Usage:    "Path to the JSON configuration file",
	Required: true,
}

func main() {
	if logger, err := logutils.NewLogger(logutils.LogSettings{Enabled: true, Level: "INFO"}); err == nil {
		zap.ReplaceGlobals(logger)
	}

	app := &cli.App{
		Name:    "namesd",
		Usage:   "Claim names and resolve them to addresses on many chains",
		Version: params.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  DebugLevelFlag,
				Usage: "Log at debug level",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the names JSON-RPC API",
				Flags:  []cli.Flag{configFlag},
				Action: serve,
			},
			{
				Name:  "derive",
				Usage: "Derive the bech32 address of a public key",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: PubKeyFlag, Usage: "Hex encoded public key", Required: true},
					&cli.StringFlag{Name: PrefixFlag, Usage: "Bech32 prefix", Required: true},
					&cli.StringFlag{Name: MethodFlag, Usage: "Hash method, cosmos or ethereum", Value: "cosmos"},
				},
				Action: derive,
			},
			{
				Name:  "sign",
				Usage: "Sign the SHA-256 of a message, as a verifier signs a verifying message",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: KeyFlag, Usage: "Hex encoded private key", Required: true},
					&cli.StringFlag{Name: MessageFlag, Usage: "Message to sign", Required: true},
				},
				Action: sign,
			},
			{
				Name:  "prove",
				Usage: "Sign a proof that the key controls an address bound to a name",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: KeyFlag, Usage: "Hex encoded private key", Required: true},
					&cli.StringFlag{Name: NameFlag, Required: true},
					&cli.StringFlag{Name: PrefixFlag, Usage: "Bech32 prefix of the bound address", Required: true},
					&cli.StringFlag{Name: SenderFlag, Usage: "Address of the name owner sending the request", Required: true},
					&cli.StringFlag{Name: MethodFlag, Usage: "Hash method, cosmos or ethereum", Value: "cosmos"},
					&cli.StringFlag{Name: SaltFlag, Usage: "Salt, random if empty"},
					&cli.StringFlag{Name: ChainIDFlag, Required: true},
					&cli.StringFlag{Name: ContractFlag, Required: true},
				},
				Action: prove,
			},
			{
				Name:   "records",
				Usage:  "List the records of a name",
				Flags:  []cli.Flag{configFlag, &cli.StringFlag{Name: NameFlag, Required: true}},
				Action: listRecords,
			},
			{
				Name:   "names",
				Usage:  "List the names bound to an address",
				Flags:  []cli.Flag{configFlag, &cli.StringFlag{Name: AddressFlag, Required: true}},
				Action: listNames,
			},
			{
				Name:  "resolve",
				Usage: "Resolve a name under a prefix",
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{Name: NameFlag, Usage: "Name, or <name>.<prefix>", Required: true},
					&cli.StringFlag{Name: PrefixFlag},
				},
				Action: resolve,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.S().Fatal(err)
	}
}
