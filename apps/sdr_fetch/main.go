package main

import (
	ctx "context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natcap/ecoshard-services/acquire"
	"github.com/natcap/ecoshard-services/models/common"
	"github.com/natcap/ecoshard-services/models/service"
	"github.com/natcap/ecoshard-services/network"
	"github.com/natcap/ecoshard-services/scheduler"
	"github.com/natcap/ecoshard-services/util/cli"
)

// The published global-SDR ecoshards. Each file name embeds the md5
// digest of its own bytes.
const (
	erosivityURL        = `https://storage.googleapis.com/global-invest-sdr-data/erosivity_CIAT_50km_md5_8e0d84d5736d118e111b8ee0ded65358.tif`
	erodibilityURL      = `https://storage.googleapis.com/global-invest-sdr-data/erodibility_globe_ISRIC_30arcseconds_md5_e3f8961b77539b686deb9a3d04ee4ce3.tif`
	lulcURL             = `https://storage.googleapis.com/ipbes-ndr-ecoshard-data/ESACCI-LC-L4-LCCS-Map-300m-P1Y-2015-v2.0.7_md5_1254d25f937e6d9bdee5779d377c5aa4.tif`
	demURL              = `https://storage.googleapis.com/global-invest-sdr-data/global_dem_3s_md5_22d0c3809af491fa09d03002bdf09748.zip`
	watershedsURL       = `https://storage.googleapis.com/global-invest-sdr-data/watersheds_globe_HydroSHEDS_15arcseconds_md5_c6acf2762123bbd5de605358e733a304.zip`
	biophysicalTableURL = `https://storage.googleapis.com/global-invest-sdr-data/Biophysical_table_ESA_ARIES_RS_md5_e16587ebe01db21034ef94171c76c463.csv`
)

func main() {
	cli.Init()
	opts := cli.ParseOpts()
	if opts.PrintHelp {
		printHelp()
		cli.PrintDefaults()
		os.Exit(0)
	}

	appContext := common.NewContext()
	workers := appContext.Config.Workers
	if opts.NumWorkers > 0 {
		workers = opts.NumWorkers
	}

	graph := scheduler.NewGraph(workers, appContext.Logger)
	ecoshardDir := appContext.Config.EcoshardDir

	flatAssets := map[string]string{
		"fetch lulc raster":        lulcURL,
		"fetch erosivity raster":   erosivityURL,
		"fetch erodibility raster": erodibilityURL,
		"fetch biophysical table":  biophysicalTableURL,
	}
	for taskName, sourceURL := range flatAssets {
		asset := service.NewAsset(sourceURL, ecoshardDir)
		validator := acquire.NewFetchValidator(appContext, fetcherFor(appContext, sourceURL))
		graph.Submit(taskName, func() error {
			return validator.Run(ctx.Background(), asset.SourceURI, asset.LocalPath)
		}, nil, asset.TargetPaths())
	}

	demAsset := service.NewAsset(demURL, ecoshardDir)
	demMaterializer := acquire.NewArchiveMaterializer(appContext, fetcherFor(appContext, demURL))
	graph.Submit("fetch dem raster", func() error {
		return demMaterializer.Run(ctx.Background(), demAsset.SourceURI, ecoshardDir, demAsset.TokenPath())
	}, nil, demAsset.TargetPaths())

	watershedsAsset := service.NewAsset(watershedsURL, ecoshardDir)
	watershedsMaterializer := acquire.NewArchiveMaterializer(appContext, fetcherFor(appContext, watershedsURL))
	watershedsTask := graph.Submit("fetch watersheds shapefile", func() error {
		return watershedsMaterializer.Run(ctx.Background(), watershedsAsset.SourceURI, ecoshardDir, watershedsAsset.TokenPath())
	}, nil, watershedsAsset.TargetPaths())

	if err := watershedsTask.Wait(); err == nil {
		shapefiles, err := filepath.Glob(filepath.Join(
			ecoshardDir, "watersheds_globe_HydroSHEDS_15arcseconds", "*.shp"))
		if err != nil {
			appContext.Logger.Errorf("cannot enumerate watershed shapefiles: %v", err)
		}
		for _, shapefilePath := range shapefiles {
			appContext.Logger.Debugf("%s", shapefilePath)
		}
	}

	if err := graph.Close(); err != nil {
		appContext.Logger.Errorf("acquisition run failed: %v", err)
		os.Exit(1)
	}
}

// fetcherFor picks the transport for a source URI by scheme. A URI we
// can't route is a configuration mistake, fatal at startup like any
// other bad config.
func fetcherFor(appContext *common.Context, sourceURI string) network.Fetcher {
	fetcher, err := network.FetcherFor(appContext, sourceURI)
	if err != nil {
		panic(err)
	}
	return fetcher
}

func printHelp() {
	message := `
sdr_fetch acquires the remote data assets for a global SDR analysis.
It downloads each ecoshard into the configured workspace, verifies it
against the fingerprint embedded in its file name, extracts the
zip-packaged assets, and records a .COMPLETE token for each extracted
archive so that finished work is skipped on the next run.
`
	fmt.Println(message)
	fmt.Println(cli.EnvMessage)
}
