// Package crosspath provides a neutral, cross-platform path value.
//
// A Path stores a filesystem path in one canonical textual form that is the
// same on every operating system. The canonical form looks like a Linux path:
//
//   - "/" is the only separator; "\" is rewritten to "/"
//   - characters Windows forbids (< > " | ? * and ASCII control bytes) are rejected
//   - a path may not end in a space or a dot
//   - Windows device names (CON, PRN, AUX, NUL, COM1-9, LPT1-9) and the
//     traversal components "." and ".." are rejected, case-insensitively
//   - a Windows drive "C:" is stored as "/mnt/c"
//
// Two tokens are kept symbolic and resolved only when the path is
// materialized for an operating system: a leading "~" is the user's home
// directory and a leading "/tmp" is the platform temporary directory.
//
// # Usage
//
//	p, err := crosspath.New(`tmp\folder_1`)
//	if err != nil {
//	    return err
//	}
//	p, err = p.JoinRelative("file_1.txt")  // tmp/folder_1/file_1.txt
//
//	p.ToWindows()   // tmp/folder_1/file_1.txt
//	p.ToCurrentOS() // native path for the running OS
//
//	err = p.WriteStrToFile("content")  // creates tmp/folder_1 first
//
// Filesystem operations on Path use the OS filesystem and environment. Use
// NewFileOps with a Materializer to supply a different types.FS or
// types.Environment.
package crosspath
