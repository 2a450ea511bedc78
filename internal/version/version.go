package version

import (
	"fmt"
	"strconv"
	"time"
)

// Version is the application version. Can be overridden at build time via:
//
//	go build -ldflags "-X vihaavastra.com/sareecrm/internal/version.Version=1.2.3"
var Version = "1.0"

// RepoURL is the project repository URL. Can be overridden at build time via:
//
//	go build -ldflags "-X vihaavastra.com/sareecrm/internal/version.RepoURL=https://github.com/yourfork/sareecrm"
var RepoURL = "https://github.com/vihaavastra/sareecrm"

// Banner prints identifying information about the server.
func Banner() string {
	y := strconv.Itoa(time.Now().Year())
	copyright := "Copyright 2025-" + y + " Vihaa Vastra Sarees. All rights reserved."

	return fmt.Sprintf("%s\nSareeCRM (v%s)\n%s\n", product(), Version, copyright)
}

func product() string {
	// http://patorjk.com/software/taag/#p=display&f=Standard&t=SareeCRM
	const s = `
  ____                       ____ ____  __  __
 / ___|  __ _ _ __ ___  ___ / ___|  _ \|  \/  |
 \___ \ / _` + "`" + ` | '__/ _ \/ _ \ |   | |_) | |\/| |
  ___) | (_| | | |  __/  __/ |___|  _ <| |  | |
 |____/ \__,_|_|  \___|\___|\____|_| \_\_|  |_|
`
	return s
}
