package main

import (
	"fmt"
	"os"

	"KZGBlobCommitment/modules/srs"

	"github.com/spf13/cobra"
)

var (
	g1PointFile  string
	g2PointFile  string
	srsOrder     uint64
	srsPointsNum uint64
)

func init() {
	blobkzgCmd.PersistentFlags().StringVar(&g1PointFile, "g1-points", "", "File holding the compressed G1 powers of tau, 32 bytes per point.")
	blobkzgCmd.PersistentFlags().StringVar(&g2PointFile, "g2-points", "", "File holding the compressed G2 points [H, tau*H], 64 bytes per point.")
	blobkzgCmd.PersistentFlags().Uint64Var(&srsOrder, "srs-order", 0, "Total size of the trusted setup the point files come from.")
	blobkzgCmd.PersistentFlags().Uint64Var(&srsPointsNum, "srs-points", 0, "Number of G1 points to load, the maximum supported coefficient count.")

	blobkzgCmd.MarkFlagRequired("g1-points")
	blobkzgCmd.MarkFlagRequired("g2-points")
	blobkzgCmd.MarkFlagRequired("srs-order")
	blobkzgCmd.MarkFlagRequired("srs-points")
}

var blobkzgCmd = &cobra.Command{
	Use:   "blobkzg",
	Short: "Commit to data blobs and prove/verify evaluations with BN254 KZG",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

// loadSRS materializes the SRS named by the persistent flags.
func loadSRS() *srs.SRS {
	source := srs.NewFileSource(g1PointFile, g2PointFile, srsOrder, srsPointsNum)
	loaded, err := srs.NewSRS(source)
	if err != nil {
		panic(err.Error())
	}
	return loaded
}

func main() {
	if err := blobkzgCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
