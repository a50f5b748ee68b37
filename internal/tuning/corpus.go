// Package tuning supports the evaluation of the fpaq methods on a
// corpus of files.
package tuning

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/ulikunitz/fpaq"
	"github.com/ulikunitz/fpaq/xio"
)

// File stores the name and the content of a corpus file.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total size of the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// Truncate limits the data of every file to n bytes.
func Truncate(files []File, n int) []File {
	t := make([]File, len(files))
	for i, f := range files {
		t[i] = f
		if len(f.Data) > n {
			t[i].Data = f.Data[:n]
		}
	}
	return t
}

// Compress compresses every file separately and returns the total
// compressed size.
func Compress(files []File, cfg fpaq.WriterConfig) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &xio.CountWriter{}
		w, err := cfg.NewWriter(cw)
		if err != nil {
			return compressedSize, err
		}
		_, err = io.Copy(w, bytes.NewReader(f.Data))
		if err != nil {
			return compressedSize, err
		}
		if err = w.Close(); err != nil {
			return compressedSize, err
		}
		compressedSize += cw.N
	}
	return compressedSize, nil
}
