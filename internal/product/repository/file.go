package repository

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fekuna/omnipos-terminal/internal/model"
)

// On-disk field widths. The store is a headerless sequence of fixed-size
// little-endian records; strings are null-padded byte arrays truncated to
// their width. There is no deletion marker: deleting rewrites the file.
const (
	barcodeLen  = 14
	nameLen     = 100
	categoryLen = 50
	taxLen      = 20
	descLen     = 100

	// RecordSize is the full on-disk record, padded to a round size so
	// the layout has room for future fields without rewriting stores.
	RecordSize = 1024
)

type diskRecord struct {
	ID           int32
	Barcode      [barcodeLen]byte
	Name         [nameLen]byte
	Price        float64
	Stock        int32
	TierPrices   [4]float64
	Manufacturer [categoryLen]byte
	Supplier     [categoryLen]byte
	Department   [categoryLen]byte
	Class        [categoryLen]byte
	Subclass     [categoryLen]byte
	TaxCategory  [taxLen]byte
	Descriptions [4][descLen]byte
	_            [192]byte
}

// FileRepository stores products as concatenated fixed-size binary
// records. Lookup is a linear scan from the start of the file.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// FindByID returns the first record with the given id, or (nil, nil) when
// the store is missing or holds no match.
func (r *FileRepository) FindByID(id int) (*model.Product, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for {
		rec, err := readRecord(reader)
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if int(rec.ID) == id {
			p := decodeRecord(rec)
			return &p, nil
		}
	}
}

// Append writes one record at the end of the store, creating it if
// needed.
func (r *FileRepository) Append(p *model.Product) error {
	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	rec := encodeRecord(p)
	if err := binary.Write(file, binary.LittleEndian, &rec); err != nil {
		return err
	}
	return nil
}

// Delete streams the store into a temporary file, omitting the matching
// record, and renames it over the original. On a miss the temporary file
// is discarded and the store is untouched.
func (r *FileRepository) Delete(id int) (bool, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer file.Close()

	tmpPath := r.path + ".tmp"
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return false, err
	}

	reader := bufio.NewReader(file)
	writer := bufio.NewWriter(tmp)
	found := false
	for {
		rec, err := readRecord(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return false, err
		}
		if int(rec.ID) == id {
			found = true
			continue
		}
		if err := binary.Write(writer, binary.LittleEndian, rec); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return false, err
		}
	}

	if err := writer.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return false, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return false, err
	}
	if !found {
		os.Remove(tmpPath)
		return false, nil
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return false, err
	}
	return true, nil
}

// All returns every record in file order. A missing store reads as empty.
func (r *FileRepository) All() ([]model.Product, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var products []model.Product
	reader := bufio.NewReader(file)
	for {
		rec, err := readRecord(reader)
		if err == io.EOF {
			return products, nil
		}
		if err != nil {
			return nil, err
		}
		products = append(products, decodeRecord(rec))
	}
}

func readRecord(r io.Reader) (*diskRecord, error) {
	var rec diskRecord
	err := binary.Read(r, binary.LittleEndian, &rec)
	if err == io.ErrUnexpectedEOF {
		// A trailing partial record means a torn append; treat the store
		// as ending at the last full record.
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func encodeRecord(p *model.Product) diskRecord {
	rec := diskRecord{
		ID:         int32(p.ID),
		Price:      p.Price,
		Stock:      int32(p.Stock),
		TierPrices: p.TierPrices,
	}
	putString(rec.Barcode[:], p.Barcode)
	putString(rec.Name[:], p.Name)
	putString(rec.Manufacturer[:], p.Manufacturer)
	putString(rec.Supplier[:], p.Supplier)
	putString(rec.Department[:], p.Department)
	putString(rec.Class[:], p.Class)
	putString(rec.Subclass[:], p.Subclass)
	putString(rec.TaxCategory[:], p.TaxCategory)
	for i := range rec.Descriptions {
		putString(rec.Descriptions[i][:], p.Descriptions[i])
	}
	return rec
}

func decodeRecord(rec *diskRecord) model.Product {
	p := model.Product{
		ID:           int(rec.ID),
		Barcode:      getString(rec.Barcode[:]),
		Name:         getString(rec.Name[:]),
		Price:        rec.Price,
		Stock:        int(rec.Stock),
		TierPrices:   rec.TierPrices,
		Manufacturer: getString(rec.Manufacturer[:]),
		Supplier:     getString(rec.Supplier[:]),
		Department:   getString(rec.Department[:]),
		Class:        getString(rec.Class[:]),
		Subclass:     getString(rec.Subclass[:]),
		TaxCategory:  getString(rec.TaxCategory[:]),
	}
	for i := range rec.Descriptions {
		p.Descriptions[i] = getString(rec.Descriptions[i][:])
	}
	return p
}

func putString(dst []byte, s string) {
	// Truncate to the field width; the last byte stays null so a record
	// written here always reads back as a terminated string.
	n := copy(dst[:len(dst)-1], s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

func getString(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		return string(src[:i])
	}
	return string(src)
}

func init() {
	if size := binary.Size(diskRecord{}); size != RecordSize {
		panic(fmt.Sprintf("product record layout is %d bytes, want %d", size, RecordSize))
	}
}
