package constants

import "time"

// CLIName is the command name used in user-facing output
const CLIName = "mapload"

// DefaultConfigFile is looked up in the working directory when --config is
// not given
const DefaultConfigFile = ".mapload.yaml"

// DefaultConcurrency is the number of documents batch commands load at once
const DefaultConcurrency = 4

// DefaultExtensions are the file name suffixes treated as mapping documents.
// "orm.xml" matches the conventional META-INF/orm.xml as well as *.orm.xml.
var DefaultExtensions = []string{".hbm.xml", "orm.xml"}

// WatchDebounce is how long watch mode waits for writes to settle
const WatchDebounce = 300 * time.Millisecond
