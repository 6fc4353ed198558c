package main

import (
	"voyager-client/cmd/voyager-cli/commands"
	"voyager-client/lib/serviceutil"
	"voyager-client/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "voyager-cli")
	telemetry.InitSlog(true)
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
