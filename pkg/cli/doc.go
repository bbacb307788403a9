/*
Package cli provides command-line interface utilities for the intake tool.

The cli package includes output formatters, error types, and common CLI
helpers used by the intake command.

Output Formatting:

Command results such as draft listings can be rendered as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, listing); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM (the autosave watcher runs until
interrupted):

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
