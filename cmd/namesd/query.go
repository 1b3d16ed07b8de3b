package main

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
)

func listRecords(cCtx *cli.Context) (err error) {
	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	store, closeDB, err := openStore(config)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeDB()) }()

	list, err := store.RecordsOf(cCtx.String(NameFlag))
	if err != nil {
		return err
	}
	return printJSON(list)
}

func listNames(cCtx *cli.Context) (err error) {
	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	store, closeDB, err := openStore(config)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeDB()) }()

	entries, err := store.NamesOf(cCtx.String(AddressFlag))
	if err != nil {
		return err
	}
	return printJSON(entries)
}

func resolve(cCtx *cli.Context) (err error) {
	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	store, closeDB, err := openStore(config)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeDB()) }()

	var address string
	if prefix := cCtx.String(PrefixFlag); prefix != "" {
		address, err = store.Resolve(cCtx.String(NameFlag), prefix)
	} else {
		address, err = store.ResolveFullName(cCtx.String(NameFlag))
	}
	if err != nil {
		return err
	}
	return printJSON(map[string]string{"address": address})
}
