package main

import (
	"os"

	"github.com/AntonioJCosta/aliasmap/internal/adapters/aliasgeneration"
	"github.com/AntonioJCosta/aliasmap/internal/adapters/catalog"
	"github.com/AntonioJCosta/aliasmap/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/aliasmap/internal/adapters/oscommand"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/AntonioJCosta/aliasmap/internal/core/services/registry"
	"github.com/AntonioJCosta/aliasmap/internal/handlers/cli"
	"github.com/AntonioJCosta/aliasmap/internal/repositories/componentfile"
)

// Version is set at build time
var Version = "dev"

func main() {
	cmdExec := oscommand.NewOSCommandExecutor()
	cmdAnalyzer := commandanalysis.NewBasicAnalyzer()
	aliasGen := aliasgeneration.NewAliasGenerator(cmdAnalyzer)
	componentCatalog := catalog.NewYAMLCatalog()

	newService := func(componentFile string, warn ports.WarnFunc) (ports.RegistryService, error) {
		path, err := componentfile.ResolvePath(componentFile)
		if err != nil {
			return nil, err
		}
		repo, err := componentfile.NewFileRepository(path)
		if err != nil {
			return nil, err
		}
		return registry.NewService(repo, aliasGen, cmdExec, componentCatalog, warn), nil
	}

	rootCmd := cli.NewRootCommand(Version, newService)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
