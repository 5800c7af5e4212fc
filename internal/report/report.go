package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	docx "github.com/fumiama/go-docx"

	"github.com/ArdaDrcn/Cwepp/internal/dashboard"
)

// Writer dumps board snapshots as .docx status reports, one file per device,
// into a fixed output directory. Re-exporting appends to the existing report
// so a device file accumulates its history of snapshots.
type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WriteSnapshot writes the given card set and reports how many device files
// it produced or extended. Per-file failures are logged and skipped, a broken
// report must not take the export down with it.
func (w *Writer) WriteSnapshot(cards []dashboard.Card) int {
	stamp := time.Now().UTC().Format(time.RFC3339)

	byAddr := make(map[string][]dashboard.Card)
	order := []string{}
	for _, c := range cards {
		addr := dashboard.NormalizeAddr(c.Device.Ip)
		if addr == "" {
			continue
		}
		if _, ok := byAddr[addr]; !ok {
			order = append(order, addr)
		}
		byAddr[addr] = append(byAddr[addr], c)
	}

	written := 0
	for _, addr := range order {
		lines := make([]string, 0, len(byAddr[addr]))
		for _, c := range byAddr[addr] {
			lines = append(lines, fmt.Sprintf("%v | kind: %v, title: %v, icon: %v", stamp, c.Kind, c.Title, c.Icon))
		}
		if err := w.writeDeviceReport(addr, lines); err != nil {
			slog.Error("error while writing device report", "addr", addr, "err", err)
			continue
		}
		written++
	}
	return written
}

func (w *Writer) writeDeviceReport(addr string, lines []string) error {
	filename := w.outputDir + addr + ".docx"

	newDoc := docx.NewA4()

	// docx is a zip file, appending means parsing the old report and
	// rebuilding the file around it
	if _, err := os.Stat(filename); err == nil {
		readFile, err := os.Open(filename)
		if err != nil {
			return err
		}
		fileinfo, err := readFile.Stat()
		if err != nil {
			readFile.Close()
			return err
		}
		oldDoc, err := docx.Parse(readFile, fileinfo.Size())
		readFile.Close()
		if err != nil {
			return err
		}
		newDoc.AppendFile(oldDoc)
		if err := os.Remove(filename); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	for _, line := range lines {
		p := newDoc.AddParagraph()
		p.AddText(line).Size("10")
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := newDoc.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
