package scan

const iwlistOpen = `wlan0     Scan completed :
          Cell 01 - Address: 38:83:45:CC:58:74
                    Channel:6
                    Frequency:2.437 GHz (Channel 6)
                    Quality=59/70  Signal level=-51 dBm
                    Encryption key:off
                    ESSID:"My Wireless Network"
                    Bit Rates:1 Mb/s; 2 Mb/s; 5.5 Mb/s; 11 Mb/s; 6 Mb/s
                              9 Mb/s; 12 Mb/s; 18 Mb/s
                    Bit Rates:24 Mb/s; 36 Mb/s; 48 Mb/s; 54 Mb/s
                    Mode:Master
                    Extra:tsf=000000d1bf1e28a9
                    Extra: Last beacon: 60ms ago
                    IE: Unknown: 000E4D7920576972656C657373204E6574
`

const cellWPA2 = `Address: 00:1C:10:11:22:33
                    Channel:1
                    Frequency:2.412 GHz (Channel 1)
                    Quality=70/70  Signal level=-56 dBm  Noise level=-92 dBm
                    Encryption key:on
                    ESSID:"SecureNet"
                    Bit Rates:54 Mb/s
                    Mode:Master
                    IE: IEEE 802.11i/WPA2 Version 1
                        Group Cipher : CCMP
                        Pairwise Ciphers (1) : CCMP
                        Authentication Suites (1) : PSK
`

const cellWPA = `Address: 00:1C:10:44:55:66
                    ESSID:"OldRouter"
                    Frequency:2.462 GHz (Channel 11)
                    Quality=40/70  Signal level=-70 dBm
                    Encryption key:on
                    IE: WPA Version 1
                        Group Cipher : TKIP
                        Pairwise Ciphers (1) : TKIP
                        Authentication Suites (1) : PSK
`

const cellWEP = `Address: 00:24:01:AA:BB:CC
                    ESSID:"LegacyNet"
                    Frequency:2.422 GHz (Channel 3)
                    Quality=30/70  Signal level=-80 dBm
                    Encryption key:on
                    Mode:Master
`

const cellRelative = `Address: 00:11:22:33:44:55
                    ESSID:"Relative"
                    Mode:Managed
                    Frequency:5.18 GHz
                    Quality:5/5  Signal level:100/100  Noise level:0/100
                    Encryption key:off
`

const cellAbsolute = `Address: 66:77:88:99:AA:BB
                    ESSID:"Absolute"
                    Protocol:IEEE 802.11bg
                    Frequency:2.447 GHz (Channel 8)
                    Quality=60  Signal level=60  Noise level=0
                    Encryption key:off
`

const cellBadFrequency = `Address: 00:00:00:00:00:01
                    ESSID:"Broken"
                    Frequency:2.412 (Channel 1)
                    Quality=70/70  Signal level=-56 dBm
`
