package dataset

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/tenso-ml/tenso/internal/matrix"
	"github.com/tenso-ml/tenso/internal/nn"
)

// IDX magic numbers.
const (
	idxImageMagic = 2051
	idxLabelMagic = 2049
)

// Classes is the number of MNIST digit classes.
const Classes = 10

// LoadMNIST reads an IDX image file and its IDX label file.
//
// Each image becomes a [rows*cols, 1] input with pixels scaled from
// 0-255 to [0, 1]; each label becomes a one-hot [10, 1] target.
// A positive limit caps the number of samples returned.
func LoadMNIST(imagesPath, labelsPath string, limit int) ([]nn.Sample, error) {
	images, err := readIDXImages(imagesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	labels, err := readIDXLabels(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}
	if len(images) != len(labels) {
		return nil, fmt.Errorf("image count (%d) != label count (%d)", len(images), len(labels))
	}

	n := len(images)
	if limit > 0 && n > limit {
		n = limit
	}

	samples := make([]nn.Sample, n)
	for i := range n {
		if labels[i] >= Classes {
			return nil, fmt.Errorf("label out of range [0, 9] at sample %d: %d", i, labels[i])
		}

		pixels := make([]float32, len(images[i]))
		for j, p := range images[i] {
			pixels[j] = float32(p) / 255.0
		}
		samples[i] = nn.Sample{
			Input:  matrix.FromSlice(len(pixels), 1, pixels),
			Target: OneHot(int(labels[i]), Classes),
		}
	}
	return samples, nil
}

// OneHot returns a [n, 1] column with a 1 at row class.
func OneHot(class, n int) *matrix.Matrix {
	m := matrix.Zeros(n, 1)
	m.Set(class, 0, 1)
	return m
}

// readIDXImages reads an image file in IDX format.
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes
//	number of cols: 4 bytes
//	pixel data: unsigned bytes (0-255)
func readIDXImages(filename string) ([][]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := readMagic(file, idxImageMagic); err != nil {
		return nil, err
	}

	var header [3]uint32
	if err := binary.Read(file, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read dimensions: %w", err)
	}
	numImages, numRows, numCols := header[0], header[1], header[2]
	if numRows == 0 || numCols == 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", numRows, numCols)
	}

	imageSize := int(numRows * numCols)
	images := make([][]byte, numImages)
	for i := range images {
		images[i] = make([]byte, imageSize)
		if _, err := io.ReadFull(file, images[i]); err != nil {
			return nil, fmt.Errorf("failed to read image %d: %w", i, err)
		}
	}
	return images, nil
}

// readIDXLabels reads a label file in IDX format.
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
func readIDXLabels(filename string) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := readMagic(file, idxLabelMagic); err != nil {
		return nil, err
	}

	var numLabels uint32
	if err := binary.Read(file, binary.BigEndian, &numLabels); err != nil {
		return nil, fmt.Errorf("failed to read label count: %w", err)
	}

	labels := make([]byte, numLabels)
	if _, err := io.ReadFull(file, labels); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	return labels, nil
}

func readMagic(r io.Reader, want uint32) error {
	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != want {
		return fmt.Errorf("invalid magic number: got %d, want %d", magic, want)
	}
	return nil
}

func column(values ...float32) *matrix.Matrix {
	return matrix.FromSlice(len(values), 1, values)
}
