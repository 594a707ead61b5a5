package project

import (
	"path/filepath"
	"strings"
)

// fileTypes maps a file extension to the lastKnownFileType tag Xcode
// records on a PBXFileReference. Extensions outside this set are
// rejected with an UnsupportedFileTypeError.
var fileTypes = map[string]string{
	".c":          "sourcecode.c.c",
	".h":          "sourcecode.c.h",
	".m":          "sourcecode.c.objc",
	".mm":         "sourcecode.cpp.objcpp",
	".cpp":        "sourcecode.cpp.cpp",
	".cc":         "sourcecode.cpp.cpp",
	".cxx":        "sourcecode.cpp.cpp",
	".hpp":        "sourcecode.cpp.h",
	".hh":         "sourcecode.cpp.h",
	".swift":      "sourcecode.swift",
	".s":          "sourcecode.asm",
	".metal":      "sourcecode.metal",
	".plist":      "text.plist.xml",
	".strings":    "text.plist.strings",
	".json":       "text.json",
	".xib":        "file.xib",
	".storyboard": "file.storyboard",
	".xcassets":   "folder.assetcatalog",
	".png":        "image.png",
	".framework":  "wrapper.framework",
	".dylib":      "compiled.mach-o.dylib",
	".a":          "archive.ar",
}

// FileTypeForPath infers the lastKnownFileType for a path from its
// extension.
func FileTypeForPath(p string) (string, error) {
	ext := strings.ToLower(filepath.Ext(p))
	if t, ok := fileTypes[ext]; ok {
		return t, nil
	}
	return "", &UnsupportedFileTypeError{Path: p}
}

// IsValidSourceTree reports whether tag is one of the source tree
// roots accepted for new file references.
func IsValidSourceTree(tag string) bool {
	switch tag {
	case SourceTreeGroup, SourceTreeSDKRoot, SourceTreeBuiltProducts:
		return true
	}
	return false
}
