// Package infoplist implements persistence for bundle Info.plist documents.
//
// A Document keeps every key of the file it was loaded from and remembers
// the on-disk format, so a load, edit, save cycle only changes the keys that
// were set. FileRepository reads and writes documents with howett.net/plist.
package infoplist
