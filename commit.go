package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"KZGBlobCommitment/modules/blob"
	"KZGBlobCommitment/modules/kzg"
	"KZGBlobCommitment/modules/poly"

	"github.com/spf13/cobra"
)

var commitBlobFile string

func init() {
	blobkzgCmd.AddCommand(commitCmd)
	commitCmd.Flags().StringVar(&commitBlobFile, "blob", "", "File holding the raw blob bytes to commit to.")
	commitCmd.MarkFlagRequired("blob")
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit to a blob file and print the commitment",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		CommitImpl()
	},
}

func CommitImpl() {
	data, err := os.ReadFile(commitBlobFile)
	if err != nil {
		panic(err.Error())
	}

	polynomial, err := blob.FromBytesAndPad(data).ToPolynomial(poly.Coefficient)
	if err != nil {
		panic(err.Error())
	}

	scheme := kzg.NewScheme(loadSRS())
	commitment, err := scheme.Commit(polynomial)
	if err != nil {
		panic(err.Error())
	}

	raw := commitment.Bytes()
	fmt.Println("commitment:", hex.EncodeToString(raw[:]))
}
