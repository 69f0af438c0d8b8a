package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"KZGBlobCommitment/modules/srs"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/spf13/cobra"
)

var setupPoints uint64

func init() {
	blobkzgCmd.AddCommand(setupCmd)
	setupCmd.Flags().Uint64Var(&setupPoints, "points", 0, "Number of G1 powers of tau to generate.")
	setupCmd.MarkFlagRequired("points")
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Generate an INSECURE local trusted setup and write the point files",
	Long: `
Generate point files from a locally sampled secret for development and
testing. The secret lives in this process, so the resulting setup carries
none of the guarantees of a real ceremony.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		SetupImpl()
	},
}

func SetupImpl() {
	tau, err := rand.Int(rand.Reader, fr.Modulus())
	if err != nil {
		panic(err.Error())
	}

	generated, err := srs.NewSRSInsecure(setupPoints, tau)
	if err != nil {
		panic(err.Error())
	}

	if err := writePointFile(g1PointFile, generated.MarshalG1()); err != nil {
		panic(err.Error())
	}
	if err := writePointFile(g2PointFile, generated.MarshalG2()); err != nil {
		panic(err.Error())
	}

	fmt.Printf("wrote %d G1 points to %s, %d G2 points to %s\n",
		generated.G1Size(), g1PointFile, srs.MinG2Points, g2PointFile)
}

func writePointFile(path string, points [][]byte) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, p := range points {
		if _, err := file.Write(p); err != nil {
			return err
		}
	}
	return nil
}
