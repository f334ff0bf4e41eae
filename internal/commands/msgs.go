package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Portable paths that mean the same thing on every OS"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgNormalizeShort  = "Print the canonical form of a path"
	MsgNativeShort     = "Render a path for an operating system"
	MsgInfoShort       = "Show every form and component of a path"
	MsgJoinShort       = "Append a relative path to a base path"
	MsgShortShort      = "Shorten a path for display"
	MsgExtShort        = "Replace the extension of a path"
	MsgCatShort        = "Print the contents of a file"
	MsgWriteShort      = "Write text to a file, creating parent directories"
	MsgMkdirShort      = "Create a directory and its parents"
	MsgRmShort         = "Remove a file or directory tree"
	MsgCpShort         = "Copy a file"
	MsgMvShort         = "Move or rename a file or directory"
	MsgExtractShort    = "Extract a .tar.gz archive"
	MsgBookmarkShort   = "Resolve or list configured bookmarks"
	MsgConfigShort     = "Manage the crosspath configuration"
	MsgConfigInitShort = "Write the default configuration file"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigPathShort = "Print the location of the configuration file"
	MsgCompletionShort = "Generate shell completion script"

	// Result messages
	MsgWroteFormat     = "wrote %d bytes to %s"
	MsgCreatedFormat   = "created %s"
	MsgRemovedFormat   = "removed %s"
	MsgCopiedFormat    = "copied %s to %s"
	MsgMovedFormat     = "moved %s to %s"
	MsgExtractedFormat = "extracted %s into %s"
	MsgConfigWritten   = "wrote default configuration to %s"

	// Version output
	MsgVersionFormat = "crosspath version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrLoadConfig  = "failed to load configuration"
	MsgErrWriteOutput = "failed to write output"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default is $XDG_CONFIG_HOME/crosspath/config.toml)"
	MsgFlagFormat       = "Output format: auto, term, text, json or yaml"
	MsgFlagTarget       = "Target OS: current, posix or windows"
	MsgFlagMax          = "Maximum number of characters (default from display.max_chars)"
	MsgFlagRecursive    = "Remove directories and their contents"
	MsgFlagMaxSize      = "Abort when the archive expands past this many bytes (0 = no limit)"
	MsgFlagPreserveMode = "Apply the file modes recorded in the archive"
	MsgFlagForce        = "Overwrite an existing file"
	MsgFlagNative       = "Print the bookmark as a native path for this OS"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/normalize-long.txt
	msgNormalizeLongRaw string
	MsgNormalizeLong    = strings.TrimSpace(msgNormalizeLongRaw)

	//go:embed msgs/normalize-example.txt
	msgNormalizeExampleRaw string
	MsgNormalizeExample    = strings.TrimSpace(msgNormalizeExampleRaw)

	//go:embed msgs/native-long.txt
	msgNativeLongRaw string
	MsgNativeLong    = strings.TrimSpace(msgNativeLongRaw)

	//go:embed msgs/native-example.txt
	msgNativeExampleRaw string
	MsgNativeExample    = strings.TrimSpace(msgNativeExampleRaw)

	//go:embed msgs/short-long.txt
	msgShortLongRaw string
	MsgShortLong    = strings.TrimSpace(msgShortLongRaw)

	//go:embed msgs/extract-long.txt
	msgExtractLongRaw string
	MsgExtractLong    = strings.TrimSpace(msgExtractLongRaw)

	//go:embed msgs/write-long.txt
	msgWriteLongRaw string
	MsgWriteLong    = strings.TrimSpace(msgWriteLongRaw)

	//go:embed msgs/bookmark-long.txt
	msgBookmarkLongRaw string
	MsgBookmarkLong    = strings.TrimSpace(msgBookmarkLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
