package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/AlsoSylv/samira/pkg/config"
	"github.com/AlsoSylv/samira/pkg/errors"
	"github.com/AlsoSylv/samira/pkg/lcu"
	"github.com/AlsoSylv/samira/pkg/logging"
	"github.com/AlsoSylv/samira/pkg/process"
)

type flagOptions struct {
	Config        string `long:"config" description:"path to the YAML configuration file"`
	ClientName    string `long:"client-name" description:"client process name override"`
	GameName      string `long:"game-name" description:"game process name override"`
	ForceLockFile bool   `long:"force-lock-file" description:"read the lock file instead of the client command line"`
	NoFallback    bool   `long:"no-fallback" description:"do not retry under the alternate strategy"`
	LogLevel      string `long:"log-level" description:"log level: debug, info, warn or error"`
}

func main() {
	var opts flagOptions
	var argv []string = os.Args[1:]
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	var err error
	_, err = parser.ParseArgs(argv)
	if err != nil {
		fmt.Printf("Command line flags parsing failed: %v", err)
		os.Exit(1)
	}

	cfg := config.Default()
	if opts.Config != "" {
		cfg, err = config.LoadFromFile(opts.Config)
		if err != nil {
			fmt.Printf("Configuration loading failed: %v\n", err)
			os.Exit(1)
		}
	}
	applyFlagOverrides(cfg, opts)

	if err := config.Validate(cfg); err != nil {
		fmt.Printf("Configuration is invalid: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewZapLogger(cfg.Logging)
	if err != nil {
		fmt.Printf("Logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Infof("opts: %+v", opts)

	discoveryLogger := logging.NewLogger("discovery: ", logging.LogFuncs{
		Debugf: logger.Debugf,
		Infof:  logger.Infof,
		Warnf:  logger.Warnf,
		Errorf: logger.Errorf,
	})

	logger.Debugf("Resolved configuration: %+v", cfg)

	provider := process.NewSystemProvider(discoveryLogger)
	discoverer := lcu.NewDiscoverer(provider, nil, discoveryLogger)

	options := lcu.Options{
		ClientProcessName: cfg.Discovery.ClientProcessName,
		GameProcessName:   cfg.Discovery.GameProcessName,
		ForceLockFile:     cfg.Discovery.ForceLockFile,
	}

	result, err := discoverer.Discover(options)
	if err != nil && *cfg.Discovery.Fallback {
		if retryOptions, ok := fallbackOptions(options, err); ok {
			logger.Warnf("Discovery failed, retrying under the alternate strategy, error: %v", err)
			result, err = discoverer.Discover(retryOptions)
		}
	}
	if err != nil {
		logger.Errorf("Discovery failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("endpoint: %s\n", result.Endpoint)
	fmt.Printf("authorization: %s\n", result.AuthHeader)
}

// applyFlagOverrides lays explicit command-line flags over the file or
// default configuration.
func applyFlagOverrides(cfg *config.Config, opts flagOptions) {
	if opts.ClientName != "" {
		cfg.Discovery.ClientProcessName = opts.ClientName
	}
	if opts.GameName != "" {
		cfg.Discovery.GameProcessName = opts.GameName
	}
	if opts.ForceLockFile {
		cfg.Discovery.ForceLockFile = true
	}
	if opts.NoFallback {
		fallback := false
		cfg.Discovery.Fallback = &fallback
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
}

// fallbackOptions decides whether the alternate strategy is worth a retry
// after a failure, and returns the options for it. A lock-file failure under
// forcing falls back to the command line; a command line missing its flags
// falls back to the lock file.
func fallbackOptions(options lcu.Options, err error) (lcu.Options, bool) {
	if options.ForceLockFile && errors.IsLockFileError(err) {
		options.ForceLockFile = false
		return options, true
	}
	if !options.ForceLockFile && !errors.IsLockFileError(err) &&
		(errors.IsPortNotFoundError(err) || errors.IsAuthTokenNotFoundError(err)) {
		options.ForceLockFile = true
		return options, true
	}
	return lcu.Options{}, false
}
